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

// Package logging wraps "github.com/op/go-logging" to give every other
// package a one-line way to obtain a named, preconfigured logger,
// following franky_logging/log.go's GetLog(name) pattern but keyed by
// name instead of returning a single shared instance, and reading the
// level from internal/config instead of a hardcoded DEBUG.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/oserr/blunder/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:.4s}:  %{message}`,
)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// Get returns the named logger, creating and configuring it with a
// stdout backend on first use. Repeated calls with the same name
// return the same *logging.Logger.
func Get(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}
