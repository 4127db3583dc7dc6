package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/sirupsen/logrus"

	"github.com/scottbass3/flareimg/internal/accountstore"
)

type accountsCommands struct {
	parent *kingpin.CmdClause

	list *kingpin.CmdClause

	add          *kingpin.CmdClause
	addName      *string
	addAccountID *string
	addAPIKey    *string

	edit          *kingpin.CmdClause
	editName      *string
	editRename    *string
	editAccountID *string
	editAPIKey    *string

	remove     *kingpin.CmdClause
	removeName *string
}

func newAccountsCommands(parent *kingpin.CmdClause) *accountsCommands {
	c := &accountsCommands{parent: parent}

	c.list = parent.Command("list", "List configured accounts").Alias("ls").Default()

	c.add = parent.Command("add", "Add an account")
	c.addName = c.add.Arg("name", "Account name").Required().String()
	c.addAccountID = c.add.Arg("account-id", "Cloudflare account id").Required().String()
	c.addAPIKey = c.add.Arg("api-key", "API token, or ${ENV_VAR}").Required().String()

	c.edit = parent.Command("edit", "Edit an account")
	c.editName = c.edit.Arg("name", "Account name or id").Required().String()
	c.editRename = c.edit.Flag("name", "New account name").String()
	c.editAccountID = c.edit.Flag("account-id", "New account id").String()
	c.editAPIKey = c.edit.Flag("api-key", "New API token").String()

	c.remove = parent.Command("remove", "Remove an account").Alias("rm")
	c.removeName = c.remove.Arg("name", "Account name or id").Required().String()
	return c
}

func (c *accountsCommands) handles(cmd string) bool {
	return strings.HasPrefix(cmd, c.parent.FullCommand()+" ")
}

func (c *accountsCommands) run(s *session, cmd string) error {
	service := accountstore.NewService(s.configPath)
	accounts, err := service.Load()
	if err != nil {
		return err
	}

	switch cmd {
	case c.list.FullCommand():
		return printAccounts(s, accounts)
	case c.add.FullCommand():
		updated, _, err := service.Add(accounts, accountstore.Account{
			Name:      *c.addName,
			AccountID: *c.addAccountID,
			APIKey:    *c.addAPIKey,
		})
		if err != nil {
			return err
		}
		if err := service.Save(updated); err != nil {
			return err
		}
		log.WithField("account", *c.addName).Info("Account added")
		return nil
	case c.edit.FullCommand():
		index, ok := accountstore.ResolveByName(accounts, *c.editName)
		if !ok {
			return fmt.Errorf("account %q not found", *c.editName)
		}
		candidate := accounts[index]
		if *c.editRename != "" {
			candidate.Name = *c.editRename
		}
		if *c.editAccountID != "" {
			candidate.AccountID = *c.editAccountID
		}
		if *c.editAPIKey != "" {
			candidate.APIKey = *c.editAPIKey
		}
		updated, err := service.Edit(accounts, index, candidate)
		if err != nil {
			return err
		}
		if err := service.Save(updated); err != nil {
			return err
		}
		log.WithField("account", candidate.Name).Info("Account updated")
		return nil
	case c.remove.FullCommand():
		updated, removed, _, err := service.RemoveByName(accounts, *c.removeName)
		if err != nil {
			return err
		}
		if err := service.Save(updated); err != nil {
			return err
		}
		log.WithField("account", removed.Name).Info("Account removed")
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func printAccounts(s *session, accounts []accountstore.Account) error {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tACCOUNT ID\tAPI KEY")
	for _, account := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", account.Name, account.AccountID, accountstore.MaskKey(account.APIKey))
	}
	return w.Flush()
}
