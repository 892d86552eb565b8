/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))
)

// NewRootCommand builds the ncrypt command tree.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "ncrypt",
		Short:   "Encrypt and decrypt files with Argon2id and XChaCha20-Poly1305",
		Long:    titleStyle.Render("ncrypt") + " protects a file under a username and password pair, binding the username into the ciphertext as authenticated data.",
		Version: version,
	}

	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newHashCmd())

	return root
}
