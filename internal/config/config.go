/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables,
// either set by defaults or read from a config.toml file, following
// internal/config's Setup()/initialized-guard pattern.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/oserr/blunder/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel is the op/go-logging level (0=CRITICAL .. 5=DEBUG).
	LogLevel = 4

	// Settings is the global configuration decoded from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Magic MagicConfiguration
}

// MagicConfiguration controls the magic-bitboard discovery component (C5).
type MagicConfiguration struct {
	// MaxIterations bounds how many random trials FindMagic tries per
	// square before giving up and reporting ErrMagicNotFound.
	MaxIterations int
	// Parallel selects the work-queue-backed discovery computer instead
	// of the single-threaded one.
	Parallel bool
	// Workers is the worker-pool size used when Parallel is true; <=0
	// defaults to runtime.NumCPU().
	Workers int
}

func defaults() conf {
	return conf{
		Magic: MagicConfiguration{
			MaxIterations: 100_000_000,
			Parallel:      false,
			Workers:       0,
		},
	}
}

// Setup reads ConfFile (if present) into Settings, falling back to
// defaults for anything the file doesn't set. Safe to call more than
// once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, decErr := toml.DecodeFile(path, &Settings); decErr != nil {
			log.Println("config: error decoding", path, ":", decErr)
		}
	}
	initialized = true
}
