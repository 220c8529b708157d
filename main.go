// ABOUTME: Entry point for the nurture MCP server and CLI
// ABOUTME: Routes to MCP server or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harperreed/nurture/cli"
	"github.com/harperreed/nurture/config"
	"github.com/harperreed/nurture/store"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	seedCount := flag.Int("seed", 0, "Seed the session with N placeholder contacts")
	seedRand := flag.Int64("seed-rand", 1, "Seed value for placeholder data generation")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("nurture version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	s := store.New()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	s.ReplaceSettings(settings)

	if *seedCount > 0 {
		if err := s.Seed(*seedCount, *seedRand); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		log.Printf("Seeded %d placeholder contacts", *seedCount)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		case "add-contact":
			if err := cli.AddContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-contacts":
			if err := cli.ListContactsCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "log-outreach":
			if err := cli.LogOutreachCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-contact":
			if err := cli.DeleteContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "add-category":
			if err := cli.AddCategoryCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-categories":
			if err := cli.ListCategoriesCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-category":
			if err := cli.DeleteCategoryCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	case "outreach":
		if len(commandArgs) == 0 {
			fmt.Println("Error: outreach requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		outreachCommand := commandArgs[0]
		outreachArgs := commandArgs[1:]

		switch outreachCommand {
		case "due":
			if err := cli.DueCommand(s, outreachArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show-prompt":
			if err := cli.ShowPromptCommand(s, outreachArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "draft":
			if err := cli.DraftCommand(s, outreachArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown outreach command: %s\n\n", outreachCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`nurture v%s - Contact nurturing toolkit

USAGE:
  nurture [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --seed <n>             Seed the session with n placeholder contacts
  --seed-rand <n>        Seed value for placeholder data generation

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  crm                    Contact and category management commands
  outreach               Outreach queue and draft commands

MCP SERVER:
  nurture --seed 10 mcp  Start MCP server with placeholder data

CRM COMMANDS:
  nurture crm add-contact       Add a new contact
    --name <name>                 Contact name (required)
    --email <email>               Email address (required)
    --phone <phone>               Phone number
    --categories <a,b>            Comma-separated category names
    --instructions <text>         Contact-level AI instructions
    --cadence <freq>              weekly, monthly, quarterly, custom (default monthly)
    --websites <urls>             Comma-separated research source URLs
    --keywords <topics>           Comma-separated research topics

  nurture crm list-contacts     List contacts by next outreach date
    --query <text>                Search by name or email
    --limit <n>                   Max results (default: 50)

  nurture crm log-outreach <id>    Record an outreach to a contact
  nurture crm delete-contact <id>  Delete a contact

  nurture crm add-category      Add a new category
    --name <name>                 Category name (required)
    --description <text>          Category description
    --instructions <text>         AI instruction text (required)
    --precedence <n>              Precedence order; higher wins, 0 = inactive

  nurture crm list-categories   List categories by precedence
    --active-only                 Hide inactive categories

  nurture crm delete-category <id>  Delete a category (blocked while in use)

OUTREACH COMMANDS:
  nurture outreach due          Show due-today/this-week/overdue/reconnect buckets
    --reconnect-limit <n>         Reconnect-priority contacts to show (default: 4)

  nurture outreach show-prompt <id>  Print the email-generation prompt
    --sources <urls>                   Override research source URLs
    --topics <topics>                  Override research topics

  nurture outreach draft <id>   Generate a placeholder email draft

EXAMPLES:
  # Explore with placeholder data
  nurture --seed 10 outreach due

  # Add a category, then a contact in it
  nurture crm add-category --name "Pickleball" --instructions "Always include a PS about playing soon."
  nurture crm add-contact --name "Jordan Ellis" --email "jordan@example.com" --categories "Pickleball"

`, version)
}
