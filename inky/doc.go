// Copyright 2019 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package inky drives Pimoroni Inky e-paper displays: the pHAT and wHAT in
// their black, red, yellow and red/yellow versions, the 7 colour Impression
// and the Spectra 6 Impression.
//
// All panels share one driver, Dev, parameterized by the Profile of their
// controller chip. Use Resolve to pick the profile from the identity EEPROM
// found on recent boards, or New with explicit Opts.
//
// Datasheets
//
// https://www.pimoroni.com/documents/ssd1608.pdf
//
// https://www.solomon-systech.com/product/ssd1683/
//
// Product pages:
//
// https://shop.pimoroni.com/products/inky-phat
//
// https://shop.pimoroni.com/products/inky-what
//
// https://shop.pimoroni.com/products/inky-impression
package inky
