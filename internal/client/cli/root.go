package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the Bookshop CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "bookshop %s> ", a.getStatus())
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
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: books, isbn <isbn>, author <name>, title <text>, reviews <isbn>, review <isbn>, unreview <isbn>, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: books, isbn <isbn>, author <name>, title <text>, reviews <isbn>, register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "books":
			a.listBooks(ctx)
		case "isbn":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: isbn <isbn>")
				continue
			}
			a.getBook(ctx, args[0])
		case "author":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: author <name>")
				continue
			}
			a.searchByAuthor(ctx, strings.Join(args, " "))
		case "title":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: title <text>")
				continue
			}
			a.searchByTitle(ctx, strings.Join(args, " "))
		case "reviews":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: reviews <isbn>")
				continue
			}
			a.listReviews(ctx, args[0])
		case "review":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: review <isbn>")
				continue
			}
			a.addReview(ctx, args[0])
		case "unreview":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: unreview <isbn>")
				continue
			}
			a.deleteReview(ctx, args[0])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
