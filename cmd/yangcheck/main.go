// SPDX-License-Identifier: MPL-2.0

// yangcheck loads a directory of YANG modules, runs them through the
// resolver, and reports success, warnings, or the management-protocol-style
// error produced by the first resolution failure.
package main

import (
	"fmt"
	"os"

	"github.com/danos/mgmterror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schemafwd/yangcore/compile"
	"github.com/schemafwd/yangcore/data/encoding"
	"github.com/schemafwd/yangcore/schema"
	"github.com/schemafwd/yangcore/schema/diag"
)

type checkFlags struct {
	yangDir             string
	capsLocation        string
	skipUnknown         bool
	keepEmptyContainers bool
	noAutoDelete        bool
	rpcSide             string
	dataFile            string
	dataFormat          string
	quiet               bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "yangcheck",
		Short: "Resolve a directory of YANG modules and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.yangDir, "yang-dir", "d", ".",
		"directory containing the YANG modules to resolve")
	cmd.Flags().StringVar(&flags.capsLocation, "caps-location",
		compile.DefaultCapsLocation, "directory of enabled-feature markers")
	cmd.Flags().BoolVar(&flags.skipUnknown, "skip-unknown", false,
		"ignore statements from unrecognised extensions instead of failing")
	cmd.Flags().BoolVar(&flags.keepEmptyContainers, "keep-empty-containers",
		false, "do not prune non-presence containers left with no children")
	cmd.Flags().BoolVar(&flags.noAutoDelete, "no-auto-delete", false,
		"do not auto-delete subtrees whose when-expression evaluates false")
	cmd.Flags().StringVar(&flags.rpcSide, "rpc-side", "",
		`restrict RPC resolution to one side ("input" or "output")`)
	cmd.Flags().StringVar(&flags.dataFile, "data", "",
		"instance document to validate against the resolved schema, in addition to resolving it")
	cmd.Flags().StringVar(&flags.dataFormat, "data-format", "rfc7951",
		`format of --data: "rfc7951", "json", or "xml"`)
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"suppress warning output; still reports errors")

	return cmd
}

func parseRPCSide(s string) (schema.RPCSide, error) {
	switch s {
	case "":
		return schema.RPCSideUnspecified, nil
	case "input":
		return schema.RPCInput, nil
	case "output":
		return schema.RPCOutput, nil
	}
	return schema.RPCSideUnspecified,
		fmt.Errorf(`--rpc-side must be "input" or "output", got %q`, s)
}

func unmarshallerFor(format string) (encoding.Unmarshaller, error) {
	switch format {
	case "rfc7951":
		return encoding.NewUnmarshaller(encoding.RFC7951), nil
	case "json":
		return encoding.NewUnmarshaller(encoding.JSON), nil
	case "xml":
		return encoding.NewUnmarshaller(encoding.XML), nil
	}
	return nil, fmt.Errorf(`--data-format must be "rfc7951", "json", or "xml", got %q`, format)
}

func runCheck(flags *checkFlags) error {
	rpcSide, err := parseRPCSide(flags.rpcSide)
	if err != nil {
		return reportError(err)
	}

	cfg := &compile.Config{
		YangDir:             flags.yangDir,
		CapsLocation:        flags.capsLocation,
		SkipUnknown:         flags.skipUnknown,
		KeepEmptyContainers: flags.keepEmptyContainers,
		NoAutoDelete:        flags.noAutoDelete,
		RPCSide:             rpcSide,
	}

	modelSet, warnings, err := compile.CompileDirWithWarnings(nil, cfg)
	if err != nil {
		return reportError(err)
	}

	if !flags.quiet {
		for _, w := range warnings {
			log.Warn(w.String())
		}
	}

	fmt.Printf("resolved %d module(s), %d submodule(s), %d warning(s)\n",
		len(modelSet.Modules()), len(modelSet.Submodules()), len(warnings))

	if flags.dataFile == "" {
		return nil
	}

	return checkData(flags, modelSet, cfg)
}

// checkData validates an instance document against the resolved schema,
// exercising KeepEmptyContainers/RPCSide/NoAutoDelete - these flags affect
// data-time validation, not schema compilation, so they have nothing to
// act on until there's a data tree to check.
func checkData(flags *checkFlags, sn schema.Node, cfg *compile.Config) error {
	raw, err := os.ReadFile(flags.dataFile)
	if err != nil {
		return reportError(err)
	}

	u, err := unmarshallerFor(flags.dataFormat)
	if err != nil {
		return reportError(err)
	}

	sink := &diag.Sink{}
	policy := cfg.WhenPolicy()
	policy.Sink = sink
	u.SetWhenPolicy(policy)

	if _, err := u.Unmarshal(sn, raw); err != nil {
		return reportError(err)
	}

	if !flags.quiet {
		for _, rec := range sink.Records() {
			log.Warnf("%s: %s", rec.Code, rec.Error())
		}
	}

	fmt.Printf("validated %s against resolved schema, %d node(s) auto-deleted\n",
		flags.dataFile, len(sink.Records()))

	return nil
}

// reportError translates a resolution failure into a structured management
// error at this CLI boundary.  Errors that already implement
// mgmterror.Formattable (eg data validation errors from schema/errors.go)
// are logged and returned unchanged; anything else (compile errors, which
// the compiler wraps as plain errors, parse failures, I/O) gets wrapped so
// the CLI always reports one consistent error shape.
func reportError(err error) error {
	if _, ok := err.(mgmterror.Formattable); ok {
		log.Error(err.Error())
		return err
	}

	wrapped := mgmterror.NewOperationFailedApplicationError()
	wrapped.Message = err.Error()
	log.Error(wrapped.Message)
	return wrapped
}
