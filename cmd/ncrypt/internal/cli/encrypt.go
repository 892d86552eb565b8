/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nmoreaux/ncrypt"
)

func newEncryptCmd() *cobra.Command {
	var (
		input    string
		output   string
		username string
		preset   string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file into an ncrypt container",
		Example: `  ncrypt encrypt --input notes.txt --output notes.txt.nc --username alice
  ncrypt encrypt -i secrets.tar -o secrets.tar.nc -u alice --preset slow`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncrypt(input, output, username, preset)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "plaintext file to encrypt (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the container to (required)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username bound into the container as authenticated data (required)")
	cmd.Flags().StringVarP(&preset, "preset", "p", "balanced", "Argon2id cost preset: very-fast, fast, balanced, slow, very-slow")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runEncrypt(input, output, username, presetName string) error {
	params, err := presetByName(presetName)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	password, err := readPassword(fmt.Sprintf("Password for %q: ", username))
	if err != nil {
		return err
	}
	confirm, err := readPassword(fmt.Sprintf("Confirm password for %q: ", username))
	if err != nil {
		return err
	}

	creds := ncrypt.NewCredentials(username, password, confirm)
	blob, err := ncrypt.EncryptData(params, plaintext, creds)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	if err := os.WriteFile(output, blob, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Println(successStyle.Render("✓") + fmt.Sprintf(" wrote %s (%s)", output, humanize.Bytes(uint64(len(blob)))))
	return nil
}

func presetByName(name string) (ncrypt.KdfParameters, error) {
	switch name {
	case "very-fast":
		return ncrypt.PresetVeryFast(), nil
	case "fast":
		return ncrypt.PresetFast(), nil
	case "balanced":
		return ncrypt.PresetBalanced(), nil
	case "slow":
		return ncrypt.PresetSlow(), nil
	case "very-slow":
		return ncrypt.PresetVerySlow(), nil
	default:
		return ncrypt.KdfParameters{}, fmt.Errorf("unknown preset %q (want one of: very-fast, fast, balanced, slow, very-slow)", name)
	}
}
