package pointfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSamples(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "samples.dat")
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestLoadSortedFile(t *testing.T) {
	name := writeSamples(t, `# a sorted sample file
1.0 10
2.0 20

3.5 35
`)
	cont, err := Load(name)
	require.NoError(t, err)
	require.Equal(t, 3, cont.Len())
	p, ok := cont.At(2)
	require.True(t, ok)
	require.Equal(t, 3.5, p.Key)
	require.Equal(t, 35.0, p.Value)
}

func TestLoadUnsortedFile(t *testing.T) {
	name := writeSamples(t, "3 30\n1 10\n2 20\n")
	cont, err := Load(name)
	require.NoError(t, err)
	require.Equal(t, 3, cont.Len())
	for i, want := range []float64{1, 2, 3} {
		p, ok := cont.At(i)
		require.True(t, ok)
		require.Equal(t, want, p.Key)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	name := writeSamples(t, "1 10\n2 twenty\n")
	_, err := Load(name)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadMissingColumn(t *testing.T) {
	name := writeSamples(t, "1 10\n2\n")
	_, err := Load(name)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file"))
	require.Error(t, err)
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a regular file")
}

func TestLoadLargeFileCrossesFragments(t *testing.T) {
	var sb strings.Builder
	const n = 5000 // larger than the default fragment size
	for i := 0; i < n; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(i * 2))
		sb.WriteString("\n")
	}
	name := writeSamples(t, sb.String())
	cont, err := Load(name)
	require.NoError(t, err)
	require.Equal(t, n, cont.Len())
	require.NoError(t, cont.Check())
	p, ok := cont.At(n - 1)
	require.True(t, ok)
	require.Equal(t, float64(n-1), p.Key)
}

func TestLoaderBroadcastsProgress(t *testing.T) {
	name := writeSamples(t, "1 1\n2 2\n3 3\n4 4\n5 5\n")
	loader := NewLoader(name, 2) // tiny fragments to force several events
	events, unsub := loader.Subscribe()
	defer unsub()
	loader.Start()
	var sawProgress, sawDone bool
	for ev := range events {
		p, ok := ev.(Progress)
		require.True(t, ok, "unexpected event type %T", ev)
		if p.Done {
			sawDone = true
			require.NoError(t, p.Err)
			require.Equal(t, 5, p.Points)
		} else if p.Points > 0 {
			sawProgress = true
		}
	}
	require.True(t, sawDone, "expected a final Done event")
	require.True(t, sawProgress, "expected intermediate progress events")
	cont, err := loader.Wait()
	require.NoError(t, err)
	require.Equal(t, 5, cont.Len())
}

func TestLoaderReportsErrors(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing"), 0)
	<-loader.Start()
	_, err := loader.Wait()
	require.Error(t, err)
}
