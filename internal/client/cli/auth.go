package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookshop/internal/client/client"
	"github.com/dmitrijs2005/bookshop/internal/common"
)

// Register prompts for credentials and creates an account. The plaintext
// password is wiped from memory as soon as the call returns.
func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.api.Register(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrConflict) {
			fmt.Fprintln(a.out, "Username already exists")
			return
		}
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Registered! You can now login.")
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.api.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid credentials")
			return
		}
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
}
