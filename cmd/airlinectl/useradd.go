package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
	"github.com/dmitrijs2005/airlineadmin/internal/server/services"
	"github.com/dmitrijs2005/airlineadmin/internal/shared"
)

// readPassword reads one line without echo when in is a terminal.
var readPassword = func(in io.Reader) ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return term.ReadPassword(int(f.Fd()))
	}
	return readLine(in)
}

// readLine reads up to a newline one byte at a time so nothing past the
// line is consumed.
func readLine(in io.Reader) ([]byte, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				return bytes.TrimSuffix(line, []byte{'\r'}), nil
			}
			line = append(line, b[0])
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return line, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func prompt(cmd *cobra.Command, label string) ([]byte, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	pw, err := readPassword(cmd.InOrStdin())
	fmt.Fprintln(cmd.ErrOrStderr())
	return pw, err
}

func newUserAddCmd(flags *dbFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "useradd <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			pw, err := prompt(cmd, "Password: ")
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			defer shared.Wipe(pw)

			again, err := prompt(cmd, "Repeat password: ")
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			defer shared.Wipe(again)

			if !bytes.Equal(pw, again) {
				return errors.New("passwords do not match")
			}
			if len(pw) == 0 {
				return errors.New("password must not be empty")
			}

			db, rm, err := flags.open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := services.NewUserService(db, rm).Register(cmd.Context(), username, string(pw))
			if errors.Is(err, common.ErrDuplicateUsername) {
				return fmt.Errorf("user %q already exists", username)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", u.Username, u.ID)
			return nil
		},
	}
}
