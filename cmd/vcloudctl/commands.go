package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	survey "github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/cloudfacet/vsphere-cloud/pkg/cloud"
	"github.com/cloudfacet/vsphere-cloud/pkg/vsphere"
)

// drv is the driver behind every command; tests swap in a mock.
var drv cloud.Driver = vsphere.NewDriver()

func runImages(ctx context.Context, out io.Writer, creds cloud.Credentials) error {
	images, err := drv.Images(ctx, creds, cloud.ImageFilter{ID: flagID, Architecture: flagArch})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tARCH\tSTATE\tDESCRIPTION")
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			img.ID, img.OwnerID, img.Architecture, img.State, img.Description)
	}
	return w.Flush()
}

func runCreateImage(ctx context.Context, out io.Writer, creds cloud.Credentials, instanceID string) error {
	images, err := drv.CreateImage(ctx, creds, instanceID)
	if err != nil {
		return err
	}
	log.Info("instance converted to image", "id", instanceID)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tARCH\tSTATE\tDESCRIPTION")
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			img.ID, img.OwnerID, img.Architecture, img.State, img.Description)
	}
	return w.Flush()
}

func runRealms(ctx context.Context, out io.Writer, creds cloud.Credentials) error {
	realms, err := drv.Realms(ctx, creds, cloud.RealmFilter{ID: flagID})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tFREE")
	for _, r := range realms {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.State, formatBytes(r.Limit))
	}
	return w.Flush()
}

func runInstances(ctx context.Context, out io.Writer, creds cloud.Credentials) error {
	instances, err := drv.Instances(ctx, creds, cloud.InstanceFilter{
		ID:    flagID,
		State: cloud.State(flagState),
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREALM\tSTATE\tPROFILE\tADDRESS\tACTIONS")
	for _, inst := range instances {
		addr := ""
		if len(inst.PublicAddresses) > 0 {
			addr = inst.PublicAddresses[0]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inst.ID, inst.RealmID, inst.State, inst.ProfileID, addr, formatActions(inst.Actions))
	}
	return w.Flush()
}

func runProfiles(ctx context.Context, out io.Writer, creds cloud.Credentials) error {
	profiles, err := drv.HardwareProfiles(ctx, creds, cloud.ProfileFilter{ID: flagID})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCPU\tMEMORY_MB")
	for _, p := range profiles {
		if p.ID == cloud.ProfileUnknown {
			fmt.Fprintf(w, "%s\t-\t-\n", p.ID)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\n", p.ID, p.CPU, p.MemoryMB)
	}
	return w.Flush()
}

func runCreate(ctx context.Context, creds cloud.Credentials) error {
	imageID := flagImage
	if imageID == "" {
		selected, err := selectImage(ctx, creds)
		if err != nil {
			return err
		}
		imageID = selected
	}

	log.Info("creating instance", "image", imageID)
	inst, err := drv.CreateInstance(ctx, creds, imageID, cloud.CreateInstanceOpts{
		Name:      flagName,
		RealmID:   flagRealm,
		Datastore: flagDatastore,
		ProfileID: flagProfile,
	})
	if err != nil {
		return err
	}

	log.Info("instance created",
		"id", inst.ID, "realm", inst.RealmID, "profile", inst.ProfileID, "state", string(inst.State))
	return nil
}

// selectImage offers an interactive image picker when no --image was given.
func selectImage(ctx context.Context, creds cloud.Credentials) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", &userError{
			msg:  "no image given",
			hint: "pass --image, or run from a terminal to pick one",
		}
	}

	images, err := drv.Images(ctx, creds, cloud.ImageFilter{})
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", &userError{
			msg:  "no images available on this endpoint",
			hint: "convert an instance first: vcloudctl image <instance-id>",
		}
	}

	options := make([]string, len(images))
	for i, img := range images {
		options[i] = img.ID
	}
	var choice string
	if err := survey.AskOne(&survey.Select{Message: "Select image:", Options: options}, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func runStart(ctx context.Context, creds cloud.Credentials, id string) error {
	if err := drv.StartInstance(ctx, creds, id); err != nil {
		return err
	}
	log.Info("start requested", "id", id)
	return nil
}

func runStop(ctx context.Context, creds cloud.Credentials, id string) error {
	if err := drv.StopInstance(ctx, creds, id); err != nil {
		return err
	}
	log.Info("stop requested", "id", id)
	return nil
}

func runReboot(ctx context.Context, creds cloud.Credentials, id string) error {
	if err := drv.RebootInstance(ctx, creds, id); err != nil {
		return err
	}
	log.Info("reboot requested", "id", id)
	return nil
}

func runDestroy(ctx context.Context, creds cloud.Credentials, id string) error {
	log.Info("destroying instance", "id", id)
	if err := drv.DestroyInstance(ctx, creds, id); err != nil {
		return err
	}
	log.Info("instance destroyed", "id", id)
	return nil
}

func runLogin(ctx context.Context, creds cloud.Credentials) error {
	if !drv.ValidCredentials(ctx, creds) {
		return &userError{
			msg:  "credentials rejected",
			hint: "check --host, --username and --password; use --insecure for self-signed endpoints",
		}
	}
	log.Info("credentials accepted", "host", creds.Host)
	return nil
}

func formatActions(actions []cloud.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

func formatBytes(n int64) string {
	const gb = 1 << 30
	if n >= gb {
		return fmt.Sprintf("%.1fGB", float64(n)/gb)
	}
	return fmt.Sprintf("%dB", n)
}
