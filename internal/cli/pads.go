package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dominauta/padring/pkg/pad"
)

// padsCommand creates the pads command for listing pad prototypes.
func (c *CLI) padsCommand() *cobra.Command {
	var (
		library     string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "pads",
		Short: "List the available pad prototypes",
		Long: `List the available pad prototypes.

Without flags the built-in library is shown. Use --library to load a TOML
pad library file, and --interactive to browse the prototypes in a picker
that prints the selected pad's ports.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadPadLibrary(library)
			if err != nil {
				return err
			}
			if interactive {
				return runPadPicker(lib)
			}
			return listPads(lib)
		},
	}

	cmd.Flags().StringVar(&library, "library", "", "TOML pad library file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse prototypes interactively")

	return cmd
}

// loadPadLibrary returns the built-in library, or the parsed TOML library
// when a path is given.
func loadPadLibrary(path string) (*pad.Library, error) {
	if path == "" {
		return pad.NewLibrary(), nil
	}
	lib, err := pad.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load pad library %s: %w", path, err)
	}
	return lib, nil
}

// listPads prints every prototype in the library.
func listPads(lib *pad.Library) error {
	for _, name := range lib.Names() {
		p, err := lib.Get(name)
		if err != nil {
			return err
		}
		label := name
		if name == lib.Default() {
			label += " " + StyleDim.Render("(default)")
		}
		fmt.Println(StyleHighlight.Render(label))
		printDetail("size  %.6g × %.6g", p.Size.Width, p.Size.Height)
		printDetail("ports %s", strings.Join(padPortNames(p), ", "))
	}
	return nil
}

// runPadPicker launches the interactive prototype browser.
func runPadPicker(lib *pad.Library) error {
	model := NewPadListModel(lib)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("pad picker: %w", err)
	}

	m, ok := final.(PadListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	printSuccess("Selected %s", m.Selected.Name)
	for _, name := range padPortNames(m.Selected) {
		port := m.Selected.Ports[name]
		printDetail("%-10s at (%.6g, %.6g)", name, port.Center.X, port.Center.Y)
	}
	printNewline()
	printNextStep("Fan out", fmt.Sprintf("padring fanout device.json --pad %s", m.Selected.Name))
	return nil
}

// padPortNames returns the sorted port names of a prototype.
func padPortNames(p *pad.Pad) []string {
	names := make([]string, 0, len(p.Ports))
	for name := range p.Ports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
