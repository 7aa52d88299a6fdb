package main

import (
	"fmt"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

// credentials builds the per-call credentials from the persistent flags.
// A missing password is prompted for when running interactively.
func credentials() (cloud.Credentials, error) {
	if flagHost == "" {
		return cloud.Credentials{}, &userError{
			msg:  "no endpoint given",
			hint: "pass --host, e.g. --host vcenter.example.com",
		}
	}
	if flagUsername == "" {
		return cloud.Credentials{}, &userError{
			msg:  "no username given",
			hint: "pass --username",
		}
	}

	password := flagPassword
	if password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cloud.Credentials{}, &userError{
				msg:  "no password given",
				hint: "pass --password or run from a terminal to be prompted",
			}
		}
		prompt := &survey.Password{
			Message: fmt.Sprintf("Password for %s@%s:", flagUsername, flagHost),
		}
		if err := survey.AskOne(prompt, &password); err != nil {
			return cloud.Credentials{}, err
		}
	}

	return cloud.Credentials{
		Username: flagUsername,
		Password: password,
		Host:     flagHost,
		Port:     flagPort,
		Insecure: flagInsecure,
	}, nil
}
