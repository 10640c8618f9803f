// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import "github.com/momeni/vehicles-api/cmd/pricing/command"

func main() {
	command.Execute()
}
