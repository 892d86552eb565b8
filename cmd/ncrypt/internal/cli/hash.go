/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreaux/ncrypt"
)

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the SHA3-256 digest of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(infoStyle.Render(ncrypt.HashText(args[0])))
			return nil
		},
	}
	return cmd
}
