// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/cmdseq/cmdseq/cmd/cmdseq"

func main() {
	cmd.Execute()
}
