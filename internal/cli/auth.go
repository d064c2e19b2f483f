package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/daykeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if name == "" {
		fmt.Println("Name must not be empty")
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	user, err := a.controller.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Println("This email is already in use.")
		} else {
			fmt.Println("Registration failed:", err)
		}
		return
	}

	fmt.Printf("Welcome, %s!\n", user.Name)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	user, err := a.controller.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password.")
		} else {
			fmt.Println("Login failed:", err)
		}
		return
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
}

func (a *App) Logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}
	a.controller.Logout()
	fmt.Println("You have been logged out")
}
