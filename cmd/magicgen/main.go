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

// Command magicgen discovers a fresh set of rook/bishop magic numbers
// (C5) and prints them so they can be pasted into a precomputed
// constants table, the same role original_source's magic-number
// search tools play during engine bring-up. Runs either the
// single-threaded or the work-queue-backed parallel computer
// depending on config.toml / command line flags.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oserr/blunder/internal/config"
	"github.com/oserr/blunder/internal/logging"
	"github.com/oserr/blunder/internal/magic"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	parallel := flag.Bool("parallel", false, "use the work-queue-backed parallel computer")
	workers := flag.Int("workers", 0, "worker count for -parallel (<=0 means runtime.NumCPU())")
	maxIter := flag.Int("maxiter", 0, "max random trials per square (<=0 uses config.toml/default)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the discovery run to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	logging.Get("magicgen")

	if *parallel {
		config.Settings.Magic.Parallel = true
	}
	if *workers > 0 {
		config.Settings.Magic.Workers = *workers
	}
	if *maxIter > 0 {
		config.Settings.Magic.MaxIterations = *maxIter
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var computer magic.Computer
	if config.Settings.Magic.Parallel {
		w := config.Settings.Magic.Workers
		if w <= 0 {
			w = runtime.NumCPU()
		}
		computer = magic.NewParComputer(w, config.Settings.Magic.MaxIterations)
	} else {
		computer = magic.SimpleComputer{MaxIterations: config.Settings.Magic.MaxIterations}
	}

	start := time.Now()
	rook, err := computer.ComputeRookMagics()
	if err != nil {
		fmt.Println("magicgen: rook:", err)
		return
	}
	bishop, err := computer.ComputeBishopMagics()
	elapsed := time.Since(start)
	if err != nil {
		fmt.Println("magicgen: bishop:", err)
		return
	}

	out.Printf("discovered magics for 64 rook and 64 bishop squares in %s\n", elapsed)
	printConstants("rook", rook)
	printConstants("bishop", bishop)
}

func printConstants(label string, magics [64]magic.Magic) {
	fmt.Printf("var %sMagics = [64]uint64{\n", label)
	for sq, m := range magics {
		fmt.Printf("\t0x%016x,", m.Number)
		if sq%4 == 3 {
			fmt.Println()
		}
	}
	fmt.Println("}")
}
