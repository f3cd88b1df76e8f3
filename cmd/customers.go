package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/solventhq/solvent-go"
	"github.com/spf13/cobra"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Inspect customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Long: `List customers with their KYC status.

Example:
  solvent customers list --limit 10`,
	RunE: runCustomersList,
}

var customersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomersGet,
}

var customersLimit int

func init() {
	customersListCmd.Flags().IntVar(&customersLimit, "limit", 25, "page size")
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersGetCmd)
}

func runCustomersList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.Customers.List(context.Background(), &solvent.ListParams{Limit: customersLimit})
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	if len(list.Data) == 0 {
		fmt.Println("No customers found")
		return nil
	}

	for _, customer := range list.Data {
		fmt.Printf("%s  %-30s %s\n",
			customer.ID,
			fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
			kycStatusColor(customer.KYCStatus))
	}
	fmt.Printf("\n%d customer(s)\n", list.Count)
	return nil
}

func runCustomersGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	customer, err := client.Customers.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	fmt.Printf("ID:         %s\n", customer.ID)
	fmt.Printf("Name:       %s %s\n", customer.FirstName, customer.LastName)
	fmt.Printf("Email:      %s\n", customer.Email)
	fmt.Printf("Status:     %s\n", customer.Status)
	fmt.Printf("KYC status: %s\n", kycStatusColor(customer.KYCStatus))
	if customer.KYCLink != "" {
		fmt.Printf("KYC link:   %s\n", customer.KYCLink)
	}
	return nil
}

func kycStatusColor(status string) string {
	switch status {
	case "approved":
		return color.GreenString(status)
	case "rejected":
		return color.RedString(status)
	default:
		return color.YellowString(status)
	}
}
