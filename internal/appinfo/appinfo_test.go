package appinfo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emucfg/internal/appinfo"
	"emucfg/internal/vdf"
	"emucfg/tree"
)

const productInfo = `"appinfo"
{
	"common"
	{
		"name"	"Half: Life?"
		"languages"
		{
			"english"	"1"
			"german"	"0"
			"French"	"1"
		}
		"supported_languages"
		{
			"french"	{ "supported" "true" }
			"spanish"	{ "supported" "true" }
			"polish"	{ "supported" "false" }
		}
	}
	"extended"
	{
		"listofdlc"	"300, 301,,abc"
	}
	"config"
	{
		"launch"
		{
			"0"	{ "executable" "game.exe" }
			"1"	{ "executable" "dlc.exe" "config" { "ownsdlc" "302" } }
		}
		"steamcontrollertouchconfigdetails"
		{
			"111"	{ "controller_type" "controller_neptune" "enabled_branches" "default" }
		}
		"steamcontrollerconfigdetails"
		{
			"111"	{ "controller_type" "controller_xbox360" }
			"222"	{ "controller_type" "controller_ps4" "enabled_branches" "beta, default" "use_action_block" "1" }
			"0"	{ "controller_type" "controller_ps5" }
		}
	}
	"depots"
	{
		"481"	{ "dlcappid" "300" }
		"482"	{ "config" { "optionaldlc" "303" } }
		"baselanguages"	"english, ITALIAN"
		"branches"
		{
			"public"	{ "buildid" "100" "timeupdated" "1700000000" }
			"beta"	{ "buildid" "101" "pwdrequired" "1" "description" "Beta" }
		}
	}
}
`

func mustInfo(t *testing.T) *tree.Node {
	t.Helper()

	root, err := vdf.Normalize([]byte(productInfo), vdf.FormatText)
	require.NoError(t, err)

	return root.Get("appinfo")
}

func TestName(t *testing.T) {
	t.Parallel()

	inStore, onDisk := appinfo.Name(mustInfo(t))
	assert.Equal(t, "Half: Life?", inStore)
	assert.Equal(t, "Half Life", onDisk)
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"english", "French", "spanish", "ITALIAN"},
		appinfo.SupportedLanguages(mustInfo(t)))
}

func TestDepots(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []uint32{481, 482}, appinfo.Depots(mustInfo(t)))
	assert.Empty(t, appinfo.Depots(nil))
}

func TestBranches(t *testing.T) {
	t.Parallel()

	now := time.Unix(1800000000, 0)
	branches := appinfo.Branches(mustInfo(t).Get("depots"), now)

	require.Len(t, branches, 2)
	assert.Equal(t, appinfo.Branch{Name: "public", BuildID: 100, TimeUpdated: 1700000000}, branches[0])
	assert.Equal(t, appinfo.Branch{
		Name: "beta", Description: "Beta", Protected: true, BuildID: 101, TimeUpdated: 1800000000,
	}, branches[1])
}

func TestDLCs(t *testing.T) {
	t.Parallel()

	details := tree.FromObject(tree.NewObject())
	details.AsObject().Set("dlc", tree.Array(tree.Int(299), tree.Int(300), tree.String("0")))

	dlcs := appinfo.DLCs(details, mustInfo(t))

	ids := make([]uint32, 0, len(dlcs))
	for _, d := range dlcs {
		ids = append(ids, d.AppID)
	}

	assert.Equal(t, []uint32{299, 300, 301, 302, 303}, ids)
	assert.Equal(t, "Unknown DLC (common - appid 299)", dlcs[0].NameInStore)
	assert.Equal(t, "Unknown DLC (depot - appid 300)", dlcs[1].NameInStore)
	assert.Equal(t, "Unknown DLC (extended - appid 301)", dlcs[2].NameInStore)
	assert.Equal(t, "Unknown DLC (launch config - appid 302)", dlcs[3].NameInStore)
	assert.Equal(t, "Unknown DLC (depot optional - appid 303)", dlcs[4].NameInStore)
}

func TestLaunchConfig(t *testing.T) {
	t.Parallel()

	launch := appinfo.LaunchConfig(mustInfo(t))
	assert.Equal(t, []string{"0", "1"}, launch.Keys())
	assert.Equal(t, 0, appinfo.LaunchConfig(nil).Len())
}

func TestControllerConfigs(t *testing.T) {
	t.Parallel()

	demo := tree.FromObject(tree.NewObject())
	configs := appinfo.ControllerConfigs(mustInfo(t), demo)

	require.Len(t, configs, 2)
	assert.Equal(t, uint64(111), configs[0].ID)
	assert.Equal(t, "controller_neptune", configs[0].Type)
	assert.Equal(t, []string{"default"}, configs[0].EnabledBranches)
	assert.Equal(t, uint64(222), configs[1].ID)
	assert.Equal(t, []string{"beta", "default"}, configs[1].EnabledBranches)
	assert.True(t, configs[1].UseActionBlock)
}

func TestParseAppDetails(t *testing.T) {
	t.Parallel()

	body := []byte(`{"480": {"success": true, "data": {
		"name": "Spacewar",
		"dlc": [1001, 1002],
		"demos": [{"appid": 481}, {"appid": 481}, {"appid": "0"}]
	}}}`)

	details, err := appinfo.ParseAppDetails(body, 480)
	require.NoError(t, err)
	assert.Equal(t, "Spacewar", details.Get("name").AsString())

	demos := appinfo.Demos(details)
	require.Len(t, demos, 1)
	assert.Equal(t, appinfo.Entitlement{
		AppID: 481, NameInStore: "Unknown demo (appid 481)", NameOnDisk: "Unknown demo (appid 481)",
	}, demos[0])

	_, err = appinfo.ParseAppDetails([]byte(`{"480": {"success": false}}`), 480)
	require.ErrorIs(t, err, appinfo.ErrNotSuccessful)

	_, err = appinfo.ParseAppDetails(body, 10)
	require.ErrorIs(t, err, appinfo.ErrNotSuccessful)

	_, err = appinfo.ParseAppDetails([]byte(`{"480":`), 480)
	require.ErrorIs(t, err, tree.ErrInvalidJSON)

	_, err = appinfo.ParseAppDetails(body, 0)
	require.Error(t, err)
}
