package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.controller.CurrentUser(); user != nil {
		s = user.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to DayKeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("dk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Tasks:    add, parse, edit <id>, list, month [yyyy-mm], done <id>, del <id...>, suggest")
			fmt.Println("Filters:  filter <category|all>, search [text]")
			fmt.Println("Account:  register, login, logout")
			fmt.Println("Other:    seed, exit")

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "add":
			a.add(ctx)
		case "parse":
			a.parse(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			a.edit(ctx, args[0])
		case "list", "l":
			a.list()
		case "month":
			a.month(args)
		case "done":
			if len(args) == 0 {
				fmt.Println("Usage: done <id>")
				continue
			}
			a.done(ctx, args[0])
		case "del":
			if len(args) == 0 {
				fmt.Println("Usage: del <id> [id...]")
				continue
			}
			a.delete(ctx, args)
		case "suggest":
			a.suggest(ctx)
		case "filter":
			a.filter(args)
		case "search":
			a.search(args)
		case "seed":
			a.seed(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
