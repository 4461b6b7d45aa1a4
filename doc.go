// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the Inky e-paper display driver and
// its tools.
//
// The driver lives in package inky, the terminal preview in package screen
// and the command line tool in cmd/inky.
package devices
