package main

import (
	"github.com/spf13/cobra"
)

type mintsOutput struct {
	Label            string   `json:"label"`
	ProgramID        string   `json:"programId"`
	ReserveMints     []string `json:"reserveMints"`
	AccountsToUpdate []string `json:"accountsToUpdate"`
}

func runMints(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	out := mintsOutput{
		Label:     s.swap.Label(),
		ProgramID: s.swap.ProgramID().String(),
	}
	for _, mint := range s.swap.ReserveMints() {
		out.ReserveMints = append(out.ReserveMints, mint.String())
	}
	for _, account := range s.swap.AccountsToUpdate() {
		out.AccountsToUpdate = append(out.AccountsToUpdate, account.String())
	}
	return writeJSON(cmd, out)
}
