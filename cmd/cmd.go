package cmd

import (
	"fmt"
	"os"

	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/logger"
	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/manifest"
	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/report"
	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/rules"
	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/validate"
	"github.com/spf13/cobra"
)

var (
	path         string
	resourceType string
)

var rootCmd = &cobra.Command{
	Use:   "k8s-yaml-validator",
	Short: "Validate required and recommended fields in Kubernetes manifests",
	Long: `k8s-yaml-validator checks Kubernetes YAML files, including multi-document
manifests separated by '---', for required and recommended best-practice
fields per resource kind.

Use --type to validate against a specific kind (full names or short names
like po, deploy, svc), or --type all to infer the kind from each document.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	table, err := rules.DefaultTable()
	if err != nil {
		return fmt.Errorf("loading rule table: %w", err)
	}
	if resourceType != validate.SelectorAll {
		if _, ok := table.Resolve(resourceType); !ok {
			return fmt.Errorf("unknown resource type %q; supported kinds: %v", resourceType, table.Kinds())
		}
	}

	files, err := manifest.FindFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .yaml/.yml files found under %s", path)
	}
	logger.Infof("Validating %d YAML file(s) under %s", len(files), path)

	engine := validate.NewEngine(table)
	var findings []validate.Finding
	for _, f := range files {
		docs, err := manifest.Load(f)
		if err != nil {
			return err
		}
		findings = append(findings, engine.Run(docs, resourceType)...)
	}

	report.NewReporter(os.Stdout).Report(findings)
	logger.Infof("Validation complete. Total YAML files checked: %d", len(files))

	if validate.HasErrors(findings) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&path, "path", "", "Path to a YAML file or a directory containing .yaml/.yml files")
	rootCmd.Flags().StringVar(&resourceType, "type", validate.SelectorAll, "Kubernetes resource type to validate (e.g. pod, deploy, svc); 'all' infers the kind from each document")
	rootCmd.MarkFlagRequired("path")
}
