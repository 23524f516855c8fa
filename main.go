package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/CodMac/jsema/config"
	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/output"
	"github.com/CodMac/jsema/processor"
	_ "github.com/CodMac/jsema/x/java"
	"github.com/spf13/cobra"
)

const (
	MaxMermaidNodes = 200
	MaxMermaidEdges = 400
)

// analyzeFlags 命令行参数；非零值覆盖配置文件
type analyzeFlags struct {
	ConfigPath string
	SourcePath string
	Jobs       int
	OutDir     string
	Format     string
	Level      int
	Strict     bool
	KeepGoing  bool
	NoJDK      bool
	LogLevel   string
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "jsema",
		Short:         "Java 源码语义分析与依赖排序",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetErr(stderr)
	root.AddCommand(newAnalyzeCmd(stderr))
	return root
}

func newAnalyzeCmd(stderr io.Writer) *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "扫描源码目录，输出排序后的类型、依赖关系与诊断",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runAnalyze(cfg, stderr)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.ConfigPath, "config", "c", "", "TOML 配置文件")
	flags.StringVar(&f.SourcePath, "path", "", "源码根路径")
	flags.IntVar(&f.Jobs, "jobs", 0, "并发数")
	flags.StringVar(&f.OutDir, "out-dir", "", "输出目录")
	flags.StringVar(&f.Format, "format", "", "格式: jsonl, mermaid")
	flags.IntVar(&f.Level, "level", 1, "过滤等级: 0(Raw), 1(Balanced), 2(Pure)")
	flags.BoolVar(&f.Strict, "strict", false, "遇到无法识别的语法节点时报错而非跳过")
	flags.BoolVar(&f.KeepGoing, "keep-going", false, "单个类型解析失败时记录诊断并继续")
	flags.BoolVar(&f.NoJDK, "no-jdk", false, "不加载内置 JDK 签名")
	flags.StringVar(&f.LogLevel, "log-level", "", "日志等级: debug, info, warn, error")
	return cmd
}

// loadConfig 配置文件打底，显式给出的命令行参数覆盖
func loadConfig(cmd *cobra.Command, f *analyzeFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("加载配置失败: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if f.SourcePath != "" {
		cfg.Scan.Root = f.SourcePath
	}
	if f.Jobs > 0 {
		cfg.Analysis.Jobs = f.Jobs
	}
	if f.OutDir != "" {
		cfg.Output.Dir = f.OutDir
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	// 无配置文件时采用 --level 的默认值
	if changed("level") || f.ConfigPath == "" {
		cfg.Output.Level = f.Level
	}
	if changed("strict") {
		cfg.Analysis.Strict = f.Strict
	}
	if changed("keep-going") {
		cfg.Analysis.KeepGoing = f.KeepGoing
	}
	if f.NoJDK {
		enabled := false
		cfg.Analysis.JDK = &enabled
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}

func runAnalyze(cfg *config.Config, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.Log.Level)
	startTime := time.Now()

	// 1. 扫描文件
	logger.Info("scanning", "root", cfg.Scan.Root)
	matcher, err := config.NewMatcher(cfg.Scan)
	if err != nil {
		return fmt.Errorf("扫描规则无效: %w", err)
	}
	files, err := matcher.ScanFiles(cfg.Scan.Root)
	if err != nil {
		return fmt.Errorf("扫描文件失败: %w", err)
	}
	logger.Info("candidate files", "count", len(files))

	// 2. 分析
	proc := processor.NewFileProcessor(core.Language(cfg.Analysis.Language), cfg.Analysis.Jobs, cfg.FilterLevel())
	proc.Options = cfg.Options()
	proc.NoisePackages = cfg.Output.NoisePackages
	proc.DisableJDK = !cfg.JDKEnabled()
	proc.Logger = logger

	res, err := proc.ProcessFiles(cfg.Scan.Root, files)
	if err != nil {
		return fmt.Errorf("分析执行失败: %w", err)
	}
	for _, d := range res.Sorted.Diagnostics {
		logger.Debug("diagnostic", "severity", d.Severity, "kind", d.Kind, "location", d.Location.String(), "subject", d.Subject, "detail", d.Detail)
	}

	// 3. 导出
	format := strings.ToLower(cfg.Output.Format)
	if format == string(output.Mermaid) {
		types := len(res.Sorted.Flatten())
		if types > MaxMermaidNodes || len(res.Relations) > MaxMermaidEdges {
			logger.Warn("graph too large for mermaid, falling back to jsonl", "types", types, "relations", len(res.Relations))
			format = string(output.JsonL)
		}
	}
	manifest := output.NewManifest(cfg.Scan.Root, format, cfg.Output.Level)
	manifest.Files = len(files)
	if err := output.NewExporter(cfg.Output.Dir, output.OutType(format)).Export(res, manifest); err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}

	logger.Info("done",
		"run_id", manifest.RunID,
		"types", manifest.Types,
		"cycles", manifest.Cycles,
		"relations", manifest.Relations,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)
	return nil
}
