package processor

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/CodMac/jsema/core"
	"github.com/CodMac/jsema/core/errors"
	"github.com/CodMac/jsema/model"
	"github.com/CodMac/jsema/observability"
	"github.com/CodMac/jsema/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type FileProcessor struct {
	Language    core.Language
	Concurrency int
	Options     core.Options
	FilterLevel core.FilterLevel
	// NoisePackages 非空时覆盖语言默认的噪音包
	NoisePackages []string
	// DisableJDK 不加载内置 JDK 签名
	DisableJDK bool
	Logger     *slog.Logger
}

func NewFileProcessor(lang core.Language, concurrency int, level core.FilterLevel) *FileProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &FileProcessor{
		Language:    lang,
		Concurrency: concurrency,
		FilterLevel: level,
		Logger:      slog.Default(),
	}
}

// Source 一个待分析的编译单元
type Source struct {
	Path string
	Code []byte
}

// Result 一次运行的全部产出
type Result struct {
	Env    *core.Environment
	Sorted *model.SortedTypes
	// Relations 签名结构关系与方法体关系，已按过滤等级去噪
	Relations []*model.DependencyRelation
}

// packageConfigurable 支持按包 glob 配置噪音的过滤器
type packageConfigurable interface {
	SetPackages(patterns []string) error
}

// ProcessFiles 读取文件后交给 ProcessSources，位置信息中的路径相对 rootPath
func (fp *FileProcessor) ProcessFiles(rootPath string, filePaths []string) (*Result, error) {
	absRoot, _ := filepath.Abs(rootPath)
	sources := make([]Source, len(filePaths))
	err := fp.runParallel(len(filePaths), func(i int) error {
		path := filePaths[i]
		code, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, errors.CodeInternal, "read source").WithContext(errors.CtxPath, path)
		}
		relPath := path
		if rel, err := filepath.Rel(absRoot, path); err == nil {
			relPath = filepath.ToSlash(rel)
		}
		sources[i] = Source{Path: relPath, Code: code}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fp.ProcessSources(sources)
}

// ProcessSources 阶段：解析 → 声明预扫描 → 类型头 → 成员签名 → 方法体与排序 → 结构关系 → 去噪
func (fp *FileProcessor) ProcessSources(sources []Source) (*Result, error) {
	logger := fp.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var bytecode core.BytecodeInspector
	if !fp.DisableJDK {
		bytecode = core.GetBytecodeInspector(fp.Language)
	}
	env := core.NewEnvironment(bytecode, logger)
	env.Options = fp.Options

	frontend, err := core.GetFrontend(fp.Language, env)
	if err != nil {
		return nil, err
	}
	if frontend.Close != nil {
		defer frontend.Close()
	}

	// --- 阶段 1: 并行解析 ---
	files := make([]*core.FileContext, len(sources))
	trees := make([]*sitter.Tree, len(sources))
	defer func() {
		for _, t := range trees {
			if t != nil {
				t.Close()
			}
		}
	}()
	err = fp.stage("parse", len(sources), func(i int) error {
		start := time.Now()
		p, err := parser.NewParser(fp.Language)
		if err != nil {
			return err
		}
		defer p.Close()
		src := sources[i]
		tree, err := p.ParseSource(src.Code)
		if err != nil {
			return errors.AddContext(err, errors.CtxPath, src.Path)
		}
		code := src.Code
		trees[i] = tree
		files[i] = core.NewFileContext(src.Path, tree.RootNode(), &code)
		observability.ParsingDuration.WithLabelValues(string(fp.Language)).Observe(time.Since(start).Seconds())
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --- 阶段 2: 第一遍 (Inspector) ---
	inspector := frontend.Inspector
	if err := fp.stage("declare", len(files), func(i int) error { return inspector.Declare(files[i]) }); err != nil {
		return nil, err
	}
	// 类型头按需跨单元递归，单线程
	start := time.Now()
	for _, fc := range files {
		if err := inspector.InspectHeaders(fc); err != nil {
			return nil, errors.AddContext(err, errors.CtxPath, fc.FilePath)
		}
	}
	observability.StageDuration.WithLabelValues("headers").Observe(time.Since(start).Seconds())

	primaries := make([][]model.TypeID, len(files))
	err = fp.stage("signatures", len(files), func(i int) error {
		ids, err := inspector.InspectSignatures(files[i])
		if err != nil {
			return errors.AddContext(err, errors.CtxPath, files[i].FilePath)
		}
		primaries[i] = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --- 阶段 3: 第二遍 (Resolver)，单线程 ---
	working := make(map[model.TypeID]*core.TypeContext)
	var all []model.TypeID
	for i, fc := range files {
		for _, id := range primaries[i] {
			working[id] = fc.Scopes[id]
			all = append(all, id)
		}
	}
	observability.TypesInspected.Add(float64(len(all)))
	start = time.Now()
	sorted, err := frontend.Resolver.Resolve(working)
	if err != nil {
		logger.Error("resolve failed", "error", err)
		return nil, err
	}
	observability.StageDuration.WithLabelValues("resolve").Observe(time.Since(start).Seconds())
	for _, c := range sorted.Cycles {
		if c.IsCycle() {
			observability.TypeCycles.Inc()
		}
	}
	for _, d := range sorted.Diagnostics {
		observability.DiagnosticsTotal.WithLabelValues(string(d.Severity), d.Kind).Inc()
	}

	// --- 阶段 4: 结构关系 (Linker) 与去噪 ---
	linker, err := core.GetLinker(fp.Language)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(all, func(a, b model.TypeID) int { return int(a - b) })
	rels := append(linker.LinkHierarchy(env, all), sorted.Relations...)

	filter := core.GetNoiseFilter(fp.Language)
	filter.SetLevel(fp.FilterLevel)
	// 过滤器是按语言注册的单例，每次运行都重新设置噪音包
	if pc, ok := filter.(packageConfigurable); ok {
		if err := pc.SetPackages(fp.NoisePackages); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "noise package pattern")
		}
	}
	rels = core.FilterRelations(filter, rels)
	observability.RelationsExported.Set(float64(len(rels)))

	return &Result{Env: env, Sorted: sorted, Relations: rels}, nil
}

// stage 并行执行一个阶段并记录耗时
func (fp *FileProcessor) stage(name string, n int, task func(i int) error) error {
	start := time.Now()
	defer func() {
		observability.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()
	return fp.runParallel(n, task)
}

// runParallel 内部并发调度器，返回第一个错误
func (fp *FileProcessor) runParallel(n int, task func(i int) error) error {
	indexChan := make(chan int, n)
	for i := 0; i < n; i++ {
		indexChan <- i
	}
	close(indexChan)

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for w := 0; w < fp.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				if err := task(i); err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}
