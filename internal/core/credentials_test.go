/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package core_test

import (
	"bytes"
	"testing"

	"github.com/nmoreaux/ncrypt/internal/core"
	"github.com/nmoreaux/ncrypt/internal/ncerr"
)

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		want     ncerr.InvalidCredentialsReason
		wantOK   bool
	}{
		{"valid", "alice", "hunter2", "hunter2", "", true},
		{"empty username", "", "hunter2", "hunter2", ncerr.ReasonEmptyUsername, false},
		{"empty password", "alice", "", "hunter2", ncerr.ReasonEmptyPassword, false},
		{"empty confirm", "alice", "hunter2", "", ncerr.ReasonEmptyConfirm, false},
		{"mismatch", "alice", "hunter2", "hunter3", ncerr.ReasonPasswordMismatch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := core.NewCredentials(tt.username, tt.password, tt.confirm)
			err := c.Validate()
			if tt.wantOK {
				if err != nil {
					t.Fatalf("expected valid credentials, got error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !ncerr.IsInvalidCredentials(err) {
				t.Fatalf("expected InvalidCredentialsError, got %T: %v", err, err)
			}
			ice, _ := err.(*ncerr.InvalidCredentialsError)
			if ice.Reason != tt.want {
				t.Fatalf("expected reason %q, got %q", tt.want, ice.Reason)
			}
		})
	}
}

func TestCredentials_Destroy_Zeroizes(t *testing.T) {
	c := core.NewCredentials("alice", "hunter2", "hunter2")
	password := c.Password()
	c.Destroy()

	for i, b := range password {
		if b != 0 {
			t.Fatalf("byte %d of password not zeroed after Destroy: got %d", i, b)
		}
	}
}

func TestCredentials_Destroy_Idempotent(t *testing.T) {
	c := core.NewCredentials("alice", "hunter2", "hunter2")
	c.Destroy()
	c.Destroy() // must not panic

	if err := c.Validate(); err == nil {
		t.Fatal("expected destroyed credentials to fail validation")
	}
}

func TestCredentials_CopyPasswordToConfirm(t *testing.T) {
	c := core.NewCredentials("alice", "hunter2", "")
	c.CopyPasswordToConfirm()
	if !bytes.Equal(c.Confirm(), []byte("hunter2")) {
		t.Fatalf("expected confirm to equal password, got %q", c.Confirm())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid credentials after copy, got: %v", err)
	}
}

func TestCredentials_DeriveUsernameSalt_Deterministic(t *testing.T) {
	c1 := core.NewCredentials("alice", "x", "x")
	c2 := core.NewCredentials("alice", "y", "y")

	s1 := c1.DeriveUsernameSalt()
	s2 := c2.DeriveUsernameSalt()
	if s1 != s2 {
		t.Fatalf("expected salt to depend only on username, got %q != %q", s1, s2)
	}
	if len(s1) != 64 {
		t.Fatalf("expected 64-character hex salt, got %d chars", len(s1))
	}
}
