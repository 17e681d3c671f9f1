package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobdigest/internal/config"
	"jobdigest/internal/secrets"
)

var (
	secretUser string
	secretHost string
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the SMTP password in the OS keychain",
}

var secretSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the SMTP password (read from stdin)",
	RunE:  runSecretSet,
}

var secretDelCmd = &cobra.Command{
	Use:   "del",
	Short: "Remove the stored SMTP password",
	RunE:  runSecretDel,
}

func init() {
	secretCmd.PersistentFlags().StringVar(&secretUser, "user", "", "mail account (default: EMAIL_USER)")
	secretCmd.PersistentFlags().StringVar(&secretHost, "host", "", "SMTP host (default: EMAIL_HOST or smtp.gmail.com)")
	secretCmd.AddCommand(secretSetCmd, secretDelCmd)
	rootCmd.AddCommand(secretCmd)
}

// secretAccount resolves the keychain account from flags, falling back to the
// mail environment.
func secretAccount() (string, error) {
	user, host := secretUser, secretHost
	if user == "" || host == "" {
		mc := config.LoadMailEnv()
		if user == "" {
			user = mc.Username
		}
		if host == "" {
			host = mc.Host
		}
	}
	if user == "" {
		return "", fmt.Errorf("no mail account: pass --user or set %s", config.EnvUser)
	}
	return secrets.Account(user, host), nil
}

func runSecretSet(cmd *cobra.Command, args []string) error {
	account, err := secretAccount()
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}

	if err := secrets.SetSMTPPassword(account, strings.TrimSpace(line)); err != nil {
		return err
	}
	fmt.Printf("stored password for %s\n", account)
	return nil
}

func runSecretDel(cmd *cobra.Command, args []string) error {
	account, err := secretAccount()
	if err != nil {
		return err
	}
	if err := secrets.DeleteSMTPPassword(account); err != nil {
		return err
	}
	fmt.Printf("removed password for %s\n", account)
	return nil
}
