package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/haven/app/routes"
	"github.com/recera/haven/cmd/haven/internal/config"
	"github.com/recera/haven/cmd/haven/internal/ui"
	"github.com/recera/haven/internal/cache"
	"github.com/recera/haven/pkg/site"
)

func newBuildCommand(a *app) *cobra.Command {
	var output string
	var plain bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site for production",
		Long:  `Renders index.html, compiles the WASM client and copies static assets into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				a.cfg.Build.Output = output
			}
			b := &builder{cfg: a.cfg, log: a.log}
			if err := ui.RunSteps("Building haven", b.steps(""), plain, b.log.Sugar().Infof); err != nil {
				return err
			}
			b.reportSizes()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides build.output)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Log steps instead of showing a spinner")

	return cmd
}

// builder produces the output directory from the project sources
type builder struct {
	cfg   *config.Config
	log   *zap.Logger
	cache *cache.Cache
}

// steps lists the build in order. reloadPath, when set, is baked into the
// page for the dev server.
func (b *builder) steps(reloadPath string) []ui.Step {
	return []ui.Step{
		{Name: "Prepare output", Run: b.prepare},
		{Name: "Render index.html", Run: func() error { return b.renderIndex(reloadPath) }},
		{Name: "Compile client", Run: b.compile},
		{Name: "Copy wasm_exec.js", Run: b.copyWasmExec},
		{Name: "Copy static files", Run: b.copyStatic},
	}
}

// run executes every step without a UI
func (b *builder) run(reloadPath string) error {
	for _, st := range b.steps(reloadPath) {
		if err := st.Run(); err != nil {
			return fmt.Errorf("%s: %w", st.Name, err)
		}
		b.log.Debug("build step done", zap.String("step", st.Name))
	}
	return nil
}

func (b *builder) out(name string) string {
	return filepath.Join(b.cfg.Build.Output, name)
}

func (b *builder) prepare() error {
	if err := os.MkdirAll(b.cfg.Build.Output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

func (b *builder) content() (site.Content, error) {
	if b.cfg.Content == "" {
		return site.Default(), nil
	}
	return site.Load(b.cfg.Content)
}

func (b *builder) renderIndex(reloadPath string) error {
	c, err := b.content()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	err = routes.RenderIndex(&buf, c, routes.PageOptions{
		WasmName:   b.cfg.Build.WasmName,
		ReloadPath: reloadPath,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(b.out("index.html"), buf.Bytes(), 0644)
}

// compile builds the WASM client, reusing the cached binary when no Go
// source changed since it was built
func (b *builder) compile() error {
	wasm := b.out(b.cfg.Build.WasmName)
	c := b.compileCache()
	var key string
	if c != nil {
		var err error
		if key, err = sourcesKey("."); err != nil {
			b.log.Warn("cannot hash sources, compiling", zap.Error(err))
		} else if data, ok := c.Get(key); ok {
			b.log.Debug("client unchanged, reusing cached build")
			return os.WriteFile(wasm, data, 0644)
		}
	}

	cmd := exec.Command("go", "build", "-o", wasm, b.cfg.Build.ClientPkg)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("go build failed: %w\n%s", err, output)
	}

	if c != nil && key != "" {
		data, err := os.ReadFile(wasm)
		if err == nil {
			err = c.Put(key, data)
		}
		if err != nil {
			b.log.Warn("failed to cache client build", zap.Error(err))
		}
	}
	return nil
}

func (b *builder) compileCache() *cache.Cache {
	if b.cache == nil && b.cfg.Build.CacheDir != "" {
		c, err := cache.New(b.cfg.Build.CacheDir, 0)
		if err != nil {
			b.log.Warn("build cache disabled", zap.Error(err))
			return nil
		}
		b.cache = c
	}
	return b.cache
}

// sourcesKey hashes the toolchain version, the module files and every Go
// file under root. Hidden and underscore directories are skipped, as the Go
// tool skips them.
func sourcesKey(root string) (string, error) {
	version, err := exec.Command("go", "version").Output()
	if err != nil {
		return "", err
	}
	inputs := []string{string(version)}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") && name != "go.mod" && name != "go.sum" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, path, string(data))
		return nil
	})
	if err != nil {
		return "", err
	}
	return cache.Key(inputs...), nil
}

// copyWasmExec copies the JS glue that ships with the Go toolchain
func (b *builder) copyWasmExec() error {
	goroot, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("failed to get GOROOT: %w", err)
	}
	root := strings.TrimSpace(string(goroot))

	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		if content, err := os.ReadFile(filepath.Join(root, rel)); err == nil {
			return os.WriteFile(b.out("wasm_exec.js"), content, 0644)
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", root)
}

func (b *builder) copyStatic() error {
	dir := b.cfg.Build.StaticDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		b.log.Debug("no static directory", zap.String("dir", dir))
		return nil
	}
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return copyFile(path, b.out(rel))
	})
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (b *builder) reportSizes() {
	wasm := b.out(b.cfg.Build.WasmName)
	if info, err := os.Stat(wasm); err == nil {
		b.log.Info("client",
			zap.String("wasm", ui.FormatSize(info.Size())),
			zap.String("gzip", ui.FormatSize(gzippedSize(wasm))),
		)
	}

	var total int64
	filepath.Walk(b.cfg.Build.Output, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	b.log.Info("build complete",
		zap.String("output", b.cfg.Build.Output),
		zap.String("total", ui.FormatSize(total)),
	)
}

func gzippedSize(path string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := io.Copy(gz, f); err != nil {
		return 0
	}
	gz.Close()
	return int64(buf.Len())
}
