/*
 * cafetools_test.go, part of cafetools.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	cafe "github.com/rmera/cafetools"
	"github.com/rmera/cafetools/traj"
	"github.com/rmera/cafetools/traj/stf"
)

// resetFlags puts every flag back to its default, so each test sees a fresh command line.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args, and returns what it wrote to the standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func particle(i int) cafe.Particle { return cafe.Particle{Unit: 1, Index: i, IntraIndex: i} }

func testContact(index, i, j int, length float64) cafe.Contact {
	return cafe.Contact{Index: index, Pair: cafe.NewGroup(particle(i), particle(j)),
		Length: length, Factor: 1, Dummy: 1, Coefficient: 0.5986, Type: "p-p"}
}

// writeFixtures writes a ninfo file with three contacts and a bond, and a two-frame
// STF trajectory of four particles on the x axis. The second frame is the first one
// stretched ten times.
func writeFixtures(t *testing.T) (ninfo, trajectory string) {
	t.Helper()
	dir := t.TempDir()
	N := &cafe.NativeInfo{
		Bonds: []cafe.Bond{{Index: 1, Pair: cafe.NewGroup(particle(1), particle(2)), Length: 3.7629,
			Factor: 1, CorrectMGO: 1, Coefficient: 110.4, Type: "pp"}},
		Contacts: []cafe.Contact{testContact(3, 3, 4, 3.5), testContact(1, 1, 2, 1.5), testContact(2, 1, 3, 2.8)},
	}
	ninfo = filepath.Join(dir, "test.ninfo")
	require.NoError(t, cafe.WriteFile(ninfo, N, true))

	trajectory = filepath.Join(dir, "test.stf")
	W, err := stf.NewWriter(trajectory, 4, map[string]string{"dt": "0.5"})
	require.NoError(t, err)
	folded := []r3.Vec{{X: 0}, {X: 1}, {X: 3}, {X: 6}}
	stretched := []r3.Vec{{X: 0}, {X: 10}, {X: 30}, {X: 60}}
	require.NoError(t, W.WriteFrame(&traj.Frame{Positions: folded}))
	require.NoError(t, W.WriteFrame(&traj.Frame{Positions: stretched}))
	require.NoError(t, W.Close())
	return ninfo, trajectory
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := run(t, "", "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "cafetools version test-version-1.0.0")
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "formation_factor = 1.2")
	assert.Contains(t, out, "header_lines = 9")

	path := filepath.Join(t.TempDir(), "cafetools.toml")
	require.NoError(t, os.WriteFile(path, []byte("[contacts]\nformation_factor = 2.0\n"), 0o644))
	out, err = run(t, "", "--config", path, "--log-level", "error", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "formation_factor = 2.0")
	assert.Contains(t, out, `level = 'error'`)
}

func TestNinfoCmd(t *testing.T) {
	ninfo, _ := writeFixtures(t)

	out, err := run(t, "", "ninfo", ninfo)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<<<< native contact\n"))
	assert.Contains(t, out, "** total_contact =   3\n")
	assert.NotContains(t, out, "native bond length")

	out, err = run(t, "", "ninfo", "--all", ninfo)
	require.NoError(t, err)
	assert.Contains(t, out, "<<<< native bond length")

	out, err = run(t, "", "ninfo", "--lo", "3", ninfo)
	require.NoError(t, err)
	assert.Contains(t, out, "** total_contact =   1\n")
	assert.Contains(t, out, testContact(3, 3, 4, 3.5).String())

	zst := filepath.Join(t.TempDir(), "filtered.ninfo.zst")
	_, err = run(t, "", "ninfo", "--hi", "2", "-o", zst, ninfo)
	require.NoError(t, err)
	N, err := cafe.ReadFile(zst)
	require.NoError(t, err)
	require.Len(t, N.Contacts, 1)
	assert.Equal(t, 1, N.Contacts[0].Index)
}

func TestContactsCmd(t *testing.T) {
	ninfo, trajectory := writeFixtures(t)

	out, err := run(t, "", "contacts", ninfo, trajectory)
	require.NoError(t, err)
	assert.Equal(t, "step,1,2,3\n0,1,1,1\n1,0,0,0\n", out)

	out, err = run(t, "", "contacts", "--factor", "1", ninfo, trajectory)
	require.NoError(t, err)
	assert.Equal(t, "step,1,2,3\n0,1,0,1\n1,0,0,0\n", out)
}

func TestQScoreCmd(t *testing.T) {
	ninfo, trajectory := writeFixtures(t)

	out, err := run(t, "", "qscore", ninfo, trajectory)
	require.NoError(t, err)
	assert.Equal(t, "time\tqscore\n0\t0.6666666666666666\n0.5\t0\n", out)

	_, err = run(t, "", "qscore", ninfo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestRgCmd(t *testing.T) {
	_, trajectory := writeFixtures(t)
	png := filepath.Join(t.TempDir(), "rg.png")

	out, err := run(t, "", "rg", "--png", png, trajectory)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time\trg", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "0.5\t"))
	_, err = os.Stat(png)
	assert.NoError(t, err)
}

func TestContactMapCmd(t *testing.T) {
	ninfo, trajectory := writeFixtures(t)

	out, err := run(t, "", "contactmap", "--skip-tail", "1", trajectory)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0,0,0\n0,1,10\n0,2,30\n\n1,0,10\n"), out)
	assert.Equal(t, 3, strings.Count(out, "\n\n"))

	png := filepath.Join(t.TempDir(), "map.png")
	_, err = run(t, "", "contactmap", "--png", png, "--ninfo", ninfo, trajectory)
	require.NoError(t, err)
	_, err = os.Stat(png)
	assert.NoError(t, err)

	_, err = run(t, "", "contactmap", "--skip-tail", "4", trajectory)
	assert.Error(t, err)
}

const (
	tsLine0 = "               0   360.00   366.38      33.93     377.23  0.000   732.77"
	tsLine1 = "            1000   300.50    20.12      -5.50      11.00  0.875     3.20"
	tsUnit1 = "#1          1000   300.50    20.12      -5.50      11.00  0.875     3.20"
)

func tsFile(lines ...string) string {
	return strings.Repeat("# header\n", 9) + strings.Join(lines, "\n") + "\n"
}

func TestTS2CSVCmd(t *testing.T) {
	out, err := run(t, tsFile(tsLine0, tsUnit1, tsLine1), "ts2csv", "-")
	require.NoError(t, err)
	assert.Equal(t, "step,tempk,radg,etot,velet,qscore,rmsd\n"+
		"0,360.00,366.38,33.93,377.23,0.000,732.77\n"+
		"1000,300.50,20.12,-5.50,11.00,0.875,3.20\n", out)
}

func TestTSCatCmd(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "md1.ts")
	second := filepath.Join(dir, "md2.ts")
	require.NoError(t, os.WriteFile(first, []byte(tsFile(tsLine0)), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(tsFile(tsLine1)), 0o644))

	out, err := run(t, "", "tscat", first, second)
	require.NoError(t, err)
	assert.Equal(t, tsFile(tsLine0, tsLine1), out)
}

func TestPlotCmd(t *testing.T) {
	dir := t.TempDir()
	series := filepath.Join(dir, "md.ts")
	require.NoError(t, os.WriteFile(series, []byte(tsFile(tsLine0, tsLine1)), 0o644))
	png := filepath.Join(dir, "radg.png")

	_, err := run(t, "", "plot", "-c", "radg", "-o", png, series)
	require.NoError(t, err)
	_, err = os.Stat(png)
	assert.NoError(t, err)

	_, err = run(t, "", "plot", series)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestQProfileCmd(t *testing.T) {
	ninfo, trajectory := writeFixtures(t)

	out, err := run(t, "", "qprofile", "--bins", "2", ninfo, trajectory)
	require.NoError(t, err)
	assert.Equal(t, "q\tp\tfree_energy\n0.25\t0.5\t0\n0.75\t0.5\t0\n", out)

	_, err = run(t, "", "qprofile", "--bins", "0", ninfo, trajectory)
	assert.Error(t, err)
}
