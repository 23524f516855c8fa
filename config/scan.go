package config

import (
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher 按 include/exclude glob 过滤扫描到的文件，路径相对扫描根、以 '/' 分隔
type Matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

func NewMatcher(scan Scan) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range scan.Include {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}
		m.include = append(m.include, g)
	}
	for _, p := range scan.Exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

func (m *Matcher) Match(rel string) bool {
	for _, g := range m.exclude {
		if g.Match(rel) {
			return false
		}
	}
	for _, g := range m.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// ScanFiles 返回 root 下全部匹配的文件（绝对路径），按遍历顺序
func (m *Matcher) ScanFiles(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		if m.Match(filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
