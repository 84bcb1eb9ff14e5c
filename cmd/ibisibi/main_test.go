package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapirbug/ibisibi/ibis"
	"github.com/tapirbug/ibisibi/internal/cliconfig"
	"github.com/tapirbug/ibisibi/transport/transporttest"
)

type nopCloser struct {
	io.ReadWriter
}

func (nopCloser) Close() error { return nil }

// testApp returns an app whose ports are all port, recording the names
// that were opened.
func testApp(t *testing.T, port io.ReadWriter) (*app, *bytes.Buffer, *[]string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(cliconfig.EnvSerial, "")
	t.Setenv(cliconfig.EnvLogLevel, "")
	t.Setenv(cliconfig.EnvInterval, "")
	t.Setenv(cliconfig.EnvLookahead, "")

	var out bytes.Buffer
	var opened []string
	a := newApp(&out)
	a.open = func(name string) (io.ReadWriteCloser, error) {
		opened = append(opened, name)
		return nopCloser{port}, nil
	}
	return a, &out, &opened
}

func telegram(t *testing.T, build func(int) (ibis.Telegram, error), n int) []byte {
	t.Helper()
	tel, err := build(n)
	require.NoError(t, err)
	return tel.Bytes()
}

func statusReply(code byte) []byte {
	msg := []byte{'a', code, ibis.CarriageReturn}
	return append(msg, ibis.Parity(msg))
}

func TestStatusCommandUsesConfigFile(t *testing.T) {
	port := transporttest.New(t).
		ExpectWrite(telegram(t, ibis.DisplayStatus, 1)).
		Receive(statusReply(ibis.StatusCharOK)...)
	a, out, opened := testApp(t, port)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("serial = \"/dev/ttyS9\"\nlog_level = \"error\"\n"), 0o644))

	root := newRootCommand(a)
	root.SetArgs([]string{"--config", cfgPath, "status", "1"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"/dev/ttyS9"}, *opened)
	assert.Equal(t, "1: ok\n", out.String())
	port.AssertDone()
}

func TestSerialFlagOverridesEnvironment(t *testing.T) {
	line := telegram(t, ibis.Line, 7)
	port := transporttest.New(t).
		ExpectWrite(line).
		ExpectWrite(telegram(t, ibis.Destination, 42))
	a, _, opened := testApp(t, port)
	t.Setenv(cliconfig.EnvSerial, "/dev/ttyENV")

	root := newRootCommand(a)
	root.SetArgs([]string{"destination", "42", "--line", "7", "-s", "/dev/ttyFLAG", "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"/dev/ttyFLAG"}, *opened)
	port.AssertDone()
}

func TestMissingSerial(t *testing.T) {
	a, _, opened := testApp(t, transporttest.New(t))

	root := newRootCommand(a)
	root.SetArgs([]string{"scan", "--log-level", "error"})
	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), cliconfig.EnvSerial)
	assert.Empty(t, *opened)
}

func TestMissingConfigFile(t *testing.T) {
	a, _, _ := testApp(t, transporttest.New(t))

	root := newRootCommand(a)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "status", "1"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"15", 15, false},
		{"16", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteRunFile(t *testing.T) {
	port := transporttest.New(t).
		ExpectWrite(telegram(t, ibis.Destination, 5))
	a, _, opened := testApp(t, port)

	rf, err := cliconfig.ParseRunFile([]byte("destination:\n  serial: /dev/ttyRUN\n  index: 5\n"))
	require.NoError(t, err)

	require.NoError(t, a.execute(context.Background(), rf))
	assert.Equal(t, []string{"/dev/ttyRUN"}, *opened)
	port.AssertDone()
}

func TestExecuteCancelledCycle(t *testing.T) {
	a, _, _ := testApp(t, transporttest.New(t))
	a.cfg.Serial = "/dev/ttyS0"

	rf, err := cliconfig.ParseRunFile([]byte("cycle:\n  plan: [\"1:0-3\"]\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.execute(ctx, rf))
}

func TestExecuteFlashMissingDatabase(t *testing.T) {
	a, _, opened := testApp(t, transporttest.New(t))
	a.cfg.Serial = "/dev/ttyS0"

	rf, err := cliconfig.ParseRunFile([]byte("flash:\n  address: 1\n  database: does-not-exist.hex\n"))
	require.NoError(t, err)

	assert.Error(t, a.execute(context.Background(), rf))
	assert.Empty(t, *opened)
}
