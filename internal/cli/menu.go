package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/pkg/pagination"
)

const menuText = `
Automatic Health Monitoring System
1. Add Diagnosis Report
2. View Diagnosis Reports
3. Search in Diagnosis Reports
4. Exit
`

// RunMenu runs the interactive loop until the user exits or input ends.
// Operation failures are printed and the loop continues.
func (a *App) RunMenu() error {
	for {
		fmt.Fprint(a.out, menuText)
		choice, err := a.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out, "\nExiting the system.")
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.menuAdd()
		case "2":
			err = a.menuView()
		case "3":
			err = a.menuSearch()
		case "4":
			fmt.Fprintln(a.out, "Exiting the system.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out, "\nExiting the system.")
			return nil
		}
		if err != nil {
			a.logger.Error().Err(err).Msg("menu operation failed")
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *App) menuAdd() error {
	patient, err := a.Prompt("Enter patient name: ", "Patient name")
	if err != nil {
		return err
	}
	diagnosis, err := a.Prompt("Enter diagnosis details: ", "Diagnosis details")
	if err != nil {
		return err
	}
	doctor, err := a.Prompt("Enter doctor's name: ", "Doctor's name")
	if err != nil {
		return err
	}
	prescription, err := a.Prompt("Enter medical prescription (separate multiple meds with commas): ", "Medical prescription")
	if err != nil {
		return err
	}
	return a.AddReport(patient, diagnosis, doctor, prescription)
}

func (a *App) menuView() error {
	patient, err := a.Prompt("Enter patient name: ", "Patient name")
	if err != nil {
		return err
	}
	return a.ViewReports(patient)
}

func (a *App) menuSearch() error {
	patient, err := a.Prompt("Enter patient name: ", "Patient name")
	if err != nil {
		return err
	}
	keyword, err := a.Prompt("Enter search keyword: ", "Search keyword")
	if err != nil {
		return err
	}
	return a.SearchReports(patient, keyword, pagination.Params{})
}

// Prompt asks for a required field until a non-blank answer arrives. The
// answer is returned trimmed. It only gives up when input ends.
func (a *App) Prompt(label, field string) (string, error) {
	for {
		line, err := a.readLine(label)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		fmt.Fprintf(a.out, "%s cannot be empty. Please try again.\n", field)
	}
}

// readLine returns one line without its terminator. A final line lacking a
// newline is returned normally; io.EOF is reported only when nothing is left.
func (a *App) readLine(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
