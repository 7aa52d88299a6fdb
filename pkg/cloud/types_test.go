package cloud

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageFilter(t *testing.T) {
	img := Image{ID: "tmpl-1", Architecture: "x86_64"}

	require.True(t, ImageFilter{}.Matches(img))
	require.True(t, ImageFilter{ID: "tmpl-1"}.Matches(img))
	require.True(t, ImageFilter{Architecture: "x86_64"}.Matches(img))
	require.False(t, ImageFilter{ID: "other"}.Matches(img))
	require.False(t, ImageFilter{Architecture: "i386"}.Matches(img))
	require.False(t, ImageFilter{ID: "tmpl-1", Architecture: "i386"}.Matches(img))
}

func TestInstanceFilter(t *testing.T) {
	inst := Instance{ID: "web-1", State: StateRunning}

	require.True(t, InstanceFilter{}.Matches(inst))
	require.True(t, InstanceFilter{State: StateRunning}.Matches(inst))
	require.False(t, InstanceFilter{State: StateStopped}.Matches(inst))
	require.False(t, InstanceFilter{ID: "web-2"}.Matches(inst))
}

func TestRealmAndProfileFilters(t *testing.T) {
	require.True(t, RealmFilter{}.Matches(Realm{ID: "ds1"}))
	require.True(t, RealmFilter{ID: "ds1"}.Matches(Realm{ID: "ds1"}))
	require.False(t, RealmFilter{ID: "ds2"}.Matches(Realm{ID: "ds1"}))

	require.True(t, ProfileFilter{ID: "small"}.Matches(HardwareProfile{ID: "small"}))
	require.False(t, ProfileFilter{ID: "large"}.Matches(HardwareProfile{ID: "small"}))
}
