package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnsiToHTML(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "<pre>hello</pre>"},
		{"empty", "", "<pre></pre>"},
		{"colored", "\033[32minfo\033[0m msg", `<pre><span style="color: green;">info</span> msg</pre>`},
		{"unclosed", "\033[31merror", `<pre><span style="color: red;">error</span></pre>`},
		{"escaped", "a<b>&c", "<pre>a&lt;b&gt;&amp;c</pre>"},
		{"unknown code", "\033[35mx", "<pre>x</pre>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ansiToHTML(tc.input))
		})
	}
}

func TestBufferedLogger(t *testing.T) {
	log := New()
	log.Info("[b] построение", zap.Int("vertices", 3))
	log.Debug("[b] отладка")

	out := log.String()
	assert.Contains(t, out, "[b] построение")
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, "[b] отладка")

	html := log.HTML()
	require.True(t, strings.HasPrefix(html, "<pre>"))
	assert.Contains(t, html, `<span style="color: green;">info</span>`)
	assert.Contains(t, html, `<span style="color: cyan;">debug</span>`)

	log.ClearLogs()
	assert.Empty(t, log.String())
}

func TestWithSharesBuffer(t *testing.T) {
	log := New()
	child := log.With(zap.String("phase", "faces"))
	child.Warn("внимание")

	assert.Contains(t, log.String(), "внимание")
	assert.Contains(t, log.String(), "faces")
}

func TestLevelFilter(t *testing.T) {
	log := NewWithLevel(zap.InfoLevel)
	log.Debug("скрыто")
	log.Info("видно")

	assert.NotContains(t, log.String(), "скрыто")
	assert.Contains(t, log.String(), "видно")
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("ничего")
	log.Error("ничего")
	log.ClearLogs()
	assert.Empty(t, log.String())
	assert.Empty(t, log.HTML())
}
