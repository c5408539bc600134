// Package cli implements the interactive text menu over the transport network.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"intercity/internal/domain/entity"
	"intercity/internal/errors"
	"intercity/internal/infra/routing/engine"

	"github.com/charmbracelet/lipgloss"
)

// Network is the part of the routing engine the menu drives
type Network interface {
	CityIndex(name string) (int, error)
	ListCities() []entity.City
	Query(source, dest int, dim entity.Dimension, modes entity.ModeSet) (*entity.Route, error)
	AddConnection(a, b int, mode entity.Mode, cost, travelTime int64) error
	RemoveConnection(a, b int, mode entity.Mode) error
}

const (
	choiceRoute = iota + 1
	choiceAdd
	choiceRemove
	choiceExit
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	errText lipgloss.Style
	success lipgloss.Style
	route   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		header:  r.NewStyle().Bold(true),
		errText: r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		route:   r.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true),
	}
}

// Menu reads choices line by line and writes prompts and results
type Menu struct {
	network Network
	scanner *bufio.Scanner
	out     io.Writer
	styles  styles
}

// NewMenu creates a menu over network reading from in and writing to out
func NewMenu(network Network, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		network: network,
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  newStyles(out),
	}
}

// errInputClosed ends the session when input runs out mid-prompt
var errInputClosed = errors.New("input closed")

// Run loops until the user exits or input ends
func (m *Menu) Run() error {
	for {
		m.println()
		m.println(m.styles.title.Render("===== City Transport System ====="))
		m.showCities()

		m.println()
		m.println("Please choose an option:")
		m.println("1. Find the shortest path")
		m.println("2. Add a city connection")
		m.println("3. Remove a city connection")
		m.println("4. Exit")

		line, err := m.prompt("Your choice: ")
		if err != nil {
			break
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			m.printError("Invalid choice")

			continue
		}

		switch choice {
		case choiceExit:
			m.println()
			m.println("Program exited.")

			return nil
		case choiceRoute:
			err = m.findRoute()
		case choiceAdd:
			err = m.addConnection()
		case choiceRemove:
			err = m.removeConnection()
		default:
			m.printError("Invalid choice")
		}

		if errors.Is(err, errInputClosed) {
			break
		}
		if err != nil {
			return err
		}
	}

	m.println()
	m.println("Program exited.")

	return m.scanner.Err()
}

func (m *Menu) showCities() {
	m.println()
	m.println(m.styles.header.Render("Available cities:"))
	m.println("----------------")
	for _, city := range m.network.ListCities() {
		m.printf("%d. %s\n", city.Index+1, city.Name)
	}
	m.println("----------------")
}

func (m *Menu) findRoute() error {
	source, dest, ok, err := m.readEndpoints("\nEnter departure city: ", "Enter destination city: ", "Departure")
	if err != nil || !ok {
		return err
	}

	if source == dest {
		m.println("Departure and destination cities are the same.")

		return nil
	}

	m.println()
	m.println("Please choose search dimension:")
	m.println("1. By cost (yuan)")
	m.println("2. By time (hours)")
	line, err := m.prompt("Your choice: ")
	if err != nil {
		return err
	}

	var dim entity.Dimension
	switch line {
	case "1":
		dim = entity.DimensionCost
	case "2":
		dim = entity.DimensionTime
	default:
		m.printError("Invalid dimension choice")

		return nil
	}

	m.println()
	m.println("Please select transportation modes (enter the corresponding numbers, separated by spaces):")
	m.printModeChoices()
	m.println("For example, enter '1 2' to use road and railway only")
	line, err = m.prompt("Your choices: ")
	if err != nil {
		return err
	}

	modes := m.parseModeChoices(line)
	if modes.IsEmpty() {
		m.println("No transportation modes selected. Using all modes.")
		modes = entity.AllModes()
	}

	m.println()
	m.printf("Selected transportation modes: %s\n", modes)

	route, err := m.network.Query(source, dest, dim, modes)
	if errors.Is(err, engine.ErrNoPathFound) {
		m.printf("No path found from %s to %s\n", m.cityName(source), m.cityName(dest))

		return nil
	}
	if err != nil {
		m.printError("Error: " + err.Error())

		return nil
	}

	m.println()
	m.printf("Optimal route from %s to %s:\n", route.Source, route.Destination)
	m.println(route.Summary())
	m.println()
	m.println(m.styles.route.Render(route.String()))

	return nil
}

func (m *Menu) addConnection() error {
	source, dest, ok, err := m.readEndpoints("\nEnter the starting city: ", "Enter the destination city: ", "Starting")
	if err != nil || !ok {
		return err
	}

	m.println("Please select transportation mode:")
	mode, ok, err := m.readMode()
	if err != nil || !ok {
		return err
	}

	cost, ok, err := m.readNumber("Please enter the cost (yuan): ")
	if err != nil || !ok {
		return err
	}
	travelTime, ok, err := m.readNumber("Please enter the time (hours): ")
	if err != nil || !ok {
		return err
	}

	if err := m.network.AddConnection(source, dest, mode, cost, travelTime); err != nil {
		m.printError("Error: " + err.Error())

		return nil
	}

	m.println(m.styles.success.Render(fmt.Sprintf("Connection added: %s to %s (%s), cost: %d yuan, time: %d hours",
		m.cityName(source), m.cityName(dest), mode, cost, travelTime)))

	return nil
}

func (m *Menu) removeConnection() error {
	source, dest, ok, err := m.readEndpoints("\nEnter the starting city: ", "Enter the destination city: ", "Starting")
	if err != nil || !ok {
		return err
	}

	m.println("Please select transportation mode to remove:")
	mode, ok, err := m.readMode()
	if err != nil || !ok {
		return err
	}

	if err := m.network.RemoveConnection(source, dest, mode); err != nil {
		m.printError("Error: " + err.Error())

		return nil
	}

	m.println(m.styles.success.Render(fmt.Sprintf("Connection removed: %s to %s (%s)",
		m.cityName(source), m.cityName(dest), mode)))

	return nil
}

// readEndpoints prompts for two city names. ok is false when either is unknown.
func (m *Menu) readEndpoints(firstPrompt, secondPrompt, firstLabel string) (int, int, bool, error) {
	first, err := m.prompt(firstPrompt)
	if err != nil {
		return -1, -1, false, err
	}
	second, err := m.prompt(secondPrompt)
	if err != nil {
		return -1, -1, false, err
	}

	source, err := m.network.CityIndex(first)
	if err != nil {
		m.printError(fmt.Sprintf("Error: %s city '%s' not found.", firstLabel, first))

		return -1, -1, false, nil
	}
	dest, err := m.network.CityIndex(second)
	if err != nil {
		m.printError(fmt.Sprintf("Error: Destination city '%s' not found.", second))

		return -1, -1, false, nil
	}

	return source, dest, true, nil
}

func (m *Menu) readMode() (entity.Mode, bool, error) {
	m.printModeChoices()
	line, err := m.prompt("Your choice: ")
	if err != nil {
		return 0, false, err
	}

	mode, ok := modeFromChoice(line)
	if !ok {
		m.printError("Invalid mode choice")

		return 0, false, nil
	}

	return mode, true, nil
}

func (m *Menu) readNumber(label string) (int64, bool, error) {
	line, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}

	n, convErr := strconv.ParseInt(line, 10, 64)
	if convErr != nil {
		m.printError(fmt.Sprintf("Invalid number: %q", line))

		return 0, false, nil
	}

	return n, true, nil
}

func (m *Menu) parseModeChoices(line string) entity.ModeSet {
	var modes entity.ModeSet
	for _, token := range strings.Fields(line) {
		mode, ok := modeFromChoice(token)
		if !ok {
			m.printError("Invalid mode choice: " + token)

			continue
		}
		modes = modes.With(mode)
	}

	return modes
}

func (m *Menu) printModeChoices() {
	for i, mode := range entity.Modes() {
		m.printf("%d. %s\n", i+1, mode)
	}
}

// modeFromChoice maps the 1-based menu number to a mode
func modeFromChoice(token string) (entity.Mode, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 1 || n > entity.ModeCount {
		return 0, false
	}

	return entity.Modes()[n-1], true
}

func (m *Menu) cityName(index int) string {
	for _, city := range m.network.ListCities() {
		if city.Index == index {
			return city.Name
		}
	}

	return strconv.Itoa(index)
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.scanner.Scan() {
		return "", errInputClosed
	}

	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *Menu) printError(msg string) {
	m.println(m.styles.errText.Render(msg))
}

func (m *Menu) println(a ...any) {
	_, _ = fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}
