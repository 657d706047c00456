package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/credlogic/metro2/internal/metro2"
)

// codesCmd represents the codes command
var codesCmd = &cobra.Command{
	Use:   "codes <status|payment|comments|conditions|dofd|bankruptcy> [code]",
	Short: "Look up Metro 2 reference codes",
	Long: `Print the Metro 2 reference tables used by the validators, or the full
detail for one code.

Examples:
  metro2 codes status
  metro2 codes status 82
  metro2 codes conditions XB
  metro2 codes dofd`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func runCodes(cmd *cobra.Command, args []string) error {
	family := args[0]
	code := ""
	if len(args) == 2 {
		code = args[1]
	}

	switch family {
	case "status":
		if code != "" {
			info, ok := metro2.GetAccountStatusInfo(code)
			if !ok {
				return fmt.Errorf("unknown account status code %q (valid: %s)", code, metro2.ValidStatusRange)
			}
			return printYAML(info)
		}
		table := metro2.AllStatusCodes()
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-4s %s\n", key, table[key].Description)
		}
		return nil
	case "payment":
		if code != "" {
			info, ok := metro2.GetPaymentRatingInfo(code)
			if !ok {
				return fmt.Errorf("unknown payment history code %q", code)
			}
			return printYAML(info)
		}
		table := metro2.AllPaymentCodes()
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			display := key
			if display == "" {
				display = "(blank)"
			}
			fmt.Printf("%-8s %s\n", display, table[key].Description)
		}
		return nil
	case "comments":
		if code != "" {
			info, ok := metro2.GetSpecialCommentInfo(code)
			if !ok {
				return fmt.Errorf("unknown special comment code %q", code)
			}
			return printYAML(info)
		}
		table := metro2.AllSpecialComments()
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-4s %s\n", key, table[key].Description)
		}
		return nil
	case "conditions":
		if code != "" {
			info, ok := metro2.GetComplianceConditionInfo(code)
			if !ok {
				return fmt.Errorf("unknown compliance condition code %q", code)
			}
			return printYAML(info)
		}
		table := metro2.AllComplianceConditions()
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-4s %s\n", key, table[key].Description)
		}
		return nil
	case "dofd":
		return printYAML(metro2.DOFDHierarchyRules())
	case "bankruptcy":
		if code != "" {
			req, ok := metro2.BankruptcyRequirements()[code]
			if !ok {
				return fmt.Errorf("unknown bankruptcy status code %q (expected 83-86)", code)
			}
			return printYAML(req)
		}
		reqs := metro2.BankruptcyRequirements()
		keys := make([]string, 0, len(reqs))
		for k := range reqs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-4s Chapter %s\n", key, reqs[key].Chapter)
		}
		return nil
	default:
		return fmt.Errorf("unknown code family %q (expected status, payment, comments, conditions, dofd or bankruptcy)", family)
	}
}

func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal code info: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
