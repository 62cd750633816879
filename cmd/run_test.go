package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRunCommand_WritesSortedReport(t *testing.T) {
	dir := t.TempDir()
	records := writeFile(t, dir, "pitchdata.csv",
		"PitcherSide,HitterSide,HitterId,HitterTeamId,PitcherId,PitcherTeamId,PA,AB,H,TB,BB,HBP,SF\n"+
			"R,L,1,10,100,20,30,24,6,9,5,1,0\n"+
			"R,L,1,10,101,21,20,16,4,7,2,0,2\n"+
			"R,R,2,11,100,20,12,12,3,3,0,0,0\n")
	combos := writeFile(t, dir, "combinations.txt",
		"Stat,Subject,Split\n"+
			"SLG,HitterId,vs RHP\n"+
			"AVG,HitterId,vs RHP\n"+
			"AVG,HitterTeamId,vs RHP\n")
	out := filepath.Join(dir, "processed", "output.csv")

	rootCmd.SetArgs([]string{"run", "--verify",
		"--records", records, "--combinations", combos, "--out", out, "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	// Hitter 2 has only 12 PA; team 10 is hitter 1 alone.
	assert.Equal(t,
		"SubjectId,Stat,Split,Subject,Value\n"+
			"1,AVG,vs RHP,HitterId,0.25\n"+
			"1,SLG,vs RHP,HitterId,0.4\n"+
			"10,AVG,vs RHP,HitterTeamId,0.25\n",
		string(got))
}

func TestRunCommand_InvalidSplitFails(t *testing.T) {
	dir := t.TempDir()
	records := writeFile(t, dir, "pitchdata.csv",
		"PitcherSide,HitterSide,HitterId,HitterTeamId,PitcherId,PitcherTeamId,PA,AB,H,TB,BB,HBP,SF\n"+
			"R,L,1,10,100,20,30,24,6,9,5,1,0\n")
	combos := writeFile(t, dir, "combinations.txt", "Stat,Subject,Split\nAVG,HitterId,vs SHP\n")
	out := filepath.Join(dir, "output.csv")

	rootCmd.SetArgs([]string{"run",
		"--records", records, "--combinations", combos, "--out", out, "--log-level", "error"})
	require.Error(t, rootCmd.Execute())

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no report should be written on failure")
}
