// Command hashpassword prints the bcrypt hash to use as ADMIN_PASSWORD_HASH.
// The password is read from the first argument or, if absent, from stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"seminarmanager/internal/adapters/auth"
)

func main() {
	password, err := readPassword()
	if err != nil {
		fmt.Fprintln(os.Stderr, "read password:", err)
		os.Exit(1)
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password>  (or pipe it on stdin)")
		os.Exit(2)
	}
	hash, err := auth.NewBcryptHasher(auth.AdminBcryptCost).Hash(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}
