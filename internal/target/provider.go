package target

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// Resolve turns a -t argument into the list of contract addresses to work
// on. A 0x... hex address is a single target; anything else is read as an
// address-list file (txt or yaml).
func Resolve(targets []string) ([]string, error) {
	var out []string
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if IsAddress(t) {
			out = append(out, t)
			continue
		}
		fromFile, err := ReadAddressFile(t)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	out = normalizeUniqueNonEmpty(out)
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid target addresses")
	}
	return out, nil
}

// IsAddress reports whether s looks like a 20-byte hex address.
func IsAddress(s string) bool {
	return len(s) == 42 && strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// ReadAddressFile reads one address per line from txt files, or a string
// list / {targets: [...]} / {addresses: [...]} document from yaml files.
// Comment lines (#, //) and duplicates are dropped.
func ReadAddressFile(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(path)))
	if ext == ".yaml" || ext == ".yml" {
		bs, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var list []string
		if err := yaml.Unmarshal(bs, &list); err == nil && len(list) > 0 {
			return keepAddresses(normalizeUniqueNonEmpty(list))
		}

		var wrapper struct {
			Targets   []string `yaml:"targets"`
			Addresses []string `yaml:"addresses"`
		}
		if err := yaml.Unmarshal(bs, &wrapper); err == nil {
			if len(wrapper.Targets) > 0 {
				return keepAddresses(normalizeUniqueNonEmpty(wrapper.Targets))
			}
			if len(wrapper.Addresses) > 0 {
				return keepAddresses(normalizeUniqueNonEmpty(wrapper.Addresses))
			}
		}
		return nil, fmt.Errorf("no addresses found in %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.TrimSpace(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keepAddresses(normalizeUniqueNonEmpty(lines))
}

func keepAddresses(items []string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if IsAddress(it) {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid addresses in list")
	}
	return out, nil
}

func normalizeUniqueNonEmpty(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		v := strings.TrimSpace(it)
		if v == "" || strings.HasPrefix(v, "#") || strings.HasPrefix(v, "//") {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
