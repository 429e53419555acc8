package commands

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacineMTB/dingcad-sub001/pkg/scene/source"
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage the local script module library",
	Long: `Manage the badger-backed module library scene scripts import from.

The library path comes from the config file ('library:') or --db. Modules
are stored under their forward-slash path, the same path scripts pass to
require().`,
}

var libDBPath string

var libAddCmd = &cobra.Command{
	Use:   "add <file.lua> [module-path]",
	Short: "Add or replace a module",
	Long: `Store a script file in the library. Without an explicit module path
the file's base name is used.

Examples:
  dingcad lib add gears.lua
  dingcad lib add gears.lua lib/gears.lua`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLibAdd,
}

var libListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored modules",
	Args:  cobra.NoArgs,
	RunE:  runLibList,
}

var libRemoveCmd = &cobra.Command{
	Use:   "remove <module-path>",
	Short: "Remove a module",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibRemove,
}

func init() {
	libCmd.PersistentFlags().StringVar(&libDBPath, "db", "", "library database path (overrides config)")
	libCmd.AddCommand(libAddCmd, libListCmd, libRemoveCmd)
	rootCmd.AddCommand(libCmd)
}

func openLibrary() (*source.Badger, error) {
	dbPath := libDBPath
	if dbPath == "" {
		cfg, err := getConfig()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Library
	}
	if dbPath == "" {
		return nil, fmt.Errorf("no library configured; set 'library:' in dingcad.yaml or pass --db")
	}
	return source.OpenBadger(source.BadgerOptions{Dir: dbPath})
}

func runLibAdd(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	modulePath := filepath.ToSlash(filepath.Base(filePath))
	if len(args) == 2 {
		modulePath = path.Clean(args[1])
	}

	src, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Put(modulePath, src); err != nil {
		return err
	}
	fmt.Printf("stored %s (%d bytes)\n", modulePath, len(src))
	return nil
}

func runLibList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	paths, err := lib.List()
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func runLibRemove(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	modulePath := path.Clean(args[0])
	if err := lib.Delete(modulePath); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", modulePath)
	return nil
}
