/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmoreaux/ncrypt"
)

func newDecryptCmd() *cobra.Command {
	var (
		input    string
		output   string
		username string
		ceiling  uint32
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an ncrypt container",
		Example: `  ncrypt decrypt --input notes.txt.nc --output notes.txt --username alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecrypt(input, output, username, ceiling)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "container file to decrypt (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the recovered plaintext to (required)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username the container was encrypted under (required)")
	cmd.Flags().Uint32Var(&ceiling, "argon2-ceiling-kib", 0, "override the decode-side Argon2 memory ceiling, in KiB (0 keeps the default)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runDecrypt(input, output, username string, ceilingKiB uint32) error {
	blob, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	password, err := readPassword(fmt.Sprintf("Password for %q: ", username))
	if err != nil {
		return err
	}

	var opts []ncrypt.Option
	if ceilingKiB > 0 {
		opts = append(opts, ncrypt.WithArgon2MemoryCeiling(ceilingKiB))
	}

	creds := ncrypt.NewCredentials(username, password, password)
	plaintext, err := ncrypt.DecryptData(blob, creds, opts...)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if err := os.WriteFile(output, plaintext, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Println(successStyle.Render("✓") + fmt.Sprintf(" wrote %s", output))
	return nil
}
