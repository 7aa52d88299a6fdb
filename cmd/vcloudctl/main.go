// vcloudctl - CLI for the uniform cloud view of a vCenter/ESXi endpoint:
// images, instances, realms and hardware profiles.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
)

var (
	flagHost     string
	flagPort     int
	flagUsername string
	flagPassword string
	flagInsecure bool

	flagID    string
	flagArch  string
	flagState string

	flagImage     string
	flagName      string
	flagRealm     string
	flagDatastore string
	flagProfile   string
)

var log *slog.Logger = newPrettyLogger(os.Stdout)

// withCreds wraps a command body with per-call credential resolution.
func withCreds(f func(cmd *cobra.Command, args []string, creds cloud.Credentials) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		creds, err := credentials()
		if err != nil {
			return err
		}
		return f(cmd, args, creds)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vcloudctl",
	Short:         "Uniform cloud view of a vCenter/ESXi endpoint",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var imagesCmd = &cobra.Command{
	Use:           "images",
	Short:         "List templates as images",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runImages(cmd.Context(), os.Stdout, creds)
	}),
}

var imageCmd = &cobra.Command{
	Use:           "image <instance-id>",
	Short:         "Convert an instance into an image (mark as template)",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, args []string, creds cloud.Credentials) error {
		return runCreateImage(cmd.Context(), os.Stdout, creds, args[0])
	}),
}

var realmsCmd = &cobra.Command{
	Use:           "realms",
	Short:         "List datastores as realms",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runRealms(cmd.Context(), os.Stdout, creds)
	}),
}

var instancesCmd = &cobra.Command{
	Use:           "instances",
	Short:         "List virtual machines as instances",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runInstances(cmd.Context(), os.Stdout, creds)
	}),
}

var profilesCmd = &cobra.Command{
	Use:           "profiles",
	Short:         "List the hardware profile catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runProfiles(cmd.Context(), os.Stdout, creds)
	}),
}

var createCmd = &cobra.Command{
	Use:           "create",
	Short:         "Clone an image into a new instance (waits for completion)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runCreate(cmd.Context(), creds)
	}),
}

var startCmd = &cobra.Command{
	Use:           "start <instance-id>",
	Short:         "Power an instance on",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, args []string, creds cloud.Credentials) error {
		return runStart(cmd.Context(), creds, args[0])
	}),
}

var stopCmd = &cobra.Command{
	Use:           "stop <instance-id>",
	Short:         "Power an instance off",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, args []string, creds cloud.Credentials) error {
		return runStop(cmd.Context(), creds, args[0])
	}),
}

var rebootCmd = &cobra.Command{
	Use:           "reboot <instance-id>",
	Short:         "Reset an instance",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, args []string, creds cloud.Credentials) error {
		return runReboot(cmd.Context(), creds, args[0])
	}),
}

var destroyCmd = &cobra.Command{
	Use:           "destroy <instance-id>",
	Short:         "Destroy an instance (waits for completion)",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, args []string, creds cloud.Credentials) error {
		return runDestroy(cmd.Context(), creds, args[0])
	}),
}

var loginCmd = &cobra.Command{
	Use:           "login",
	Short:         "Validate credentials against the endpoint",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: withCreds(func(cmd *cobra.Command, _ []string, creds cloud.Credentials) error {
		return runLogin(cmd.Context(), creds)
	}),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "Endpoint hostname, host:port or https URL")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "Endpoint port (default 443)")
	rootCmd.PersistentFlags().StringVarP(&flagUsername, "username", "u", "", "Endpoint username")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "Endpoint password (prompted when omitted)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "Skip TLS verification")

	imagesCmd.Flags().StringVar(&flagID, "id", "", "Filter by image id")
	imagesCmd.Flags().StringVar(&flagArch, "arch", "", "Filter by architecture")
	realmsCmd.Flags().StringVar(&flagID, "id", "", "Filter by realm id")
	instancesCmd.Flags().StringVar(&flagID, "id", "", "Filter by instance id")
	instancesCmd.Flags().StringVar(&flagState, "state", "", "Filter by state (RUNNING, STOPPED, PENDING)")
	profilesCmd.Flags().StringVar(&flagID, "id", "", "Filter by profile id")

	createCmd.Flags().StringVar(&flagImage, "image", "", "Image id to clone (prompted when omitted)")
	createCmd.Flags().StringVar(&flagName, "name", "", "Instance name (generated when omitted)")
	createCmd.Flags().StringVar(&flagRealm, "realm", "", "Target realm (datastore) id")
	createCmd.Flags().StringVar(&flagDatastore, "datastore", "", "Target datastore without realm-based placement")
	createCmd.Flags().StringVar(&flagProfile, "profile", "", "Hardware profile id (default small)")

	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(realmsCmd)
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(destroyCmd)
	rootCmd.AddCommand(loginCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		const (
			red    = "\033[31m"
			yellow = "\033[33m"
			cyan   = "\033[36m"
			reset  = "\033[0m"
		)
		if ue, ok := err.(*userError); ok {
			fmt.Fprintf(os.Stderr, "%sError:%s %s\n", red, reset, ue.Error())
			if hint := ue.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "%sHint:%s %s%s%s\n", yellow, reset, cyan, hint, reset)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%sError:%s %v\n", red, reset, err)
		}
		os.Exit(1)
	}
}
