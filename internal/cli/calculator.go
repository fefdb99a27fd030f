package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrei-cloud/go_cmac/pkg/cmac"
	"github.com/andrei-cloud/go_cmac/pkg/cryptoutils"
)

const (
	fieldTypeRadio = iota
	fieldTypeText
)

type option struct {
	value       string
	description string
}

type fieldConfig struct {
	name        string
	description string
	fieldType   int
	options     []option // For radio fields.
	selected    int      // For radio fields.
	textValue   string   // For text fields.
}

// calculatorModel is the interactive MAC calculator: pick a cipher, type the
// key, message and tag length, and compute tags without leaving the terminal.
type calculatorModel struct {
	currentField int
	fields       []fieldConfig
	result       string
	errMessage   string
}

// newCalculatorModel creates a new TUI model for interactive tag computation.
func newCalculatorModel() calculatorModel {
	fields := []fieldConfig{
		{
			name:        "Cipher",
			description: "Block cipher engine",
			fieldType:   fieldTypeRadio,
			options: []option{
				{"aes", "AES (16-byte block)"},
				{"des3", "Triple DES (8-byte block)"},
			},
		},
		{
			name:        "Key",
			description: "Clear key (hex)",
			fieldType:   fieldTypeText,
		},
		{
			name:        "Message",
			description: "Message (hex, may be empty)",
			fieldType:   fieldTypeText,
		},
		{
			name:        "Tag length",
			description: "Tag length in bytes (even, 2 up to the block size)",
			fieldType:   fieldTypeText,
			textValue:   "8",
		},
	}

	return calculatorModel{fields: fields}
}

// Init initializes the model.
func (m calculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m calculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	currentField := &m.fields[m.currentField]

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if m.currentField >= len(m.fields)-1 {
			m.compute()

			return m, nil
		}
		m.currentField++
	case "tab":
		if m.currentField < len(m.fields)-1 {
			m.currentField++
		}
	case "shift+tab":
		if m.currentField > 0 {
			m.currentField--
		}
	case "up":
		if currentField.fieldType == fieldTypeRadio && currentField.selected > 0 {
			currentField.selected--
		}
	case "down":
		if currentField.fieldType == fieldTypeRadio &&
			currentField.selected < len(currentField.options)-1 {
			currentField.selected++
		}
	case "backspace":
		if currentField.fieldType == fieldTypeText && len(currentField.textValue) > 0 {
			currentField.textValue = currentField.textValue[:len(currentField.textValue)-1]
		}
	default:
		if currentField.fieldType == fieldTypeText && keyMsg.Type == tea.KeyRunes {
			currentField.textValue += string(keyMsg.Runes)
		}
	}

	return m, nil
}

// compute runs the one-shot CMAC over the entered fields.
func (m *calculatorModel) compute() {
	m.result = ""
	m.errMessage = ""

	cipherID, err := ParseCipher(m.fields[0].options[m.fields[0].selected].value)
	if err != nil {
		m.errMessage = err.Error()

		return
	}

	key, err := DecodeHexField("key", m.fields[1].textValue)
	if err != nil {
		m.errMessage = err.Error()

		return
	}

	message, err := DecodeHexField("message", m.fields[2].textValue)
	if err != nil {
		m.errMessage = err.Error()

		return
	}

	tagLen, err := strconv.Atoi(strings.TrimSpace(m.fields[3].textValue))
	if err != nil {
		m.errMessage = "tag length must be a number"

		return
	}

	tag, err := cmac.Sum(cipherID, key, message, tagLen)
	if err != nil {
		m.errMessage = err.Error()

		return
	}

	m.result = cryptoutils.Raw2Str(tag)
}

// View renders the calculator.
func (m calculatorModel) View() string {
	var b strings.Builder

	b.WriteString("CMAC calculator (enter to advance/compute, tab/shift+tab to move, esc to quit)\n\n")

	for i, f := range m.fields {
		cursor := "  "
		if i == m.currentField {
			cursor = "> "
		}

		switch f.fieldType {
		case fieldTypeRadio:
			b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, f.name, f.description))
			for j, opt := range f.options {
				marker := "( )"
				if j == f.selected {
					marker = "(x)"
				}
				b.WriteString(fmt.Sprintf("     %s %s - %s\n", marker, opt.value, opt.description))
			}
		case fieldTypeText:
			b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, f.name, f.textValue))
			if i == m.currentField {
				b.WriteString(fmt.Sprintf("     %s\n", f.description))
			}
		}
	}

	if m.errMessage != "" {
		b.WriteString(fmt.Sprintf("\nerror: %s\n", m.errMessage))
	}
	if m.result != "" {
		b.WriteString(fmt.Sprintf("\ntag: %s\n", m.result))
	}

	return b.String()
}

// RunCalculator starts the interactive MAC calculator.
func RunCalculator() error {
	if _, err := tea.NewProgram(newCalculatorModel()).Run(); err != nil {
		return fmt.Errorf("calculator failed: %w", err)
	}

	return nil
}
