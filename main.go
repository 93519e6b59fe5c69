// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cluster16s-cli/cmd/cluster16s"

func main() {
	cmd.Execute()
}
