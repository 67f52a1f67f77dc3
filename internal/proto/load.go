package proto

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/wtdcode/dissectctl/internal/ctxlog"
	"github.com/wtdcode/dissectctl/internal/fsutil"
	"github.com/wtdcode/dissectctl/internal/hclutil"
)

// manifestRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'protocol' blocks.
type manifestRootSchema struct {
	Protocols []*hclProtocol `hcl:"protocol,block"`
}

// hclProtocol represents a single 'protocol' block for decoding purposes.
type hclProtocol struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// protocolBodySchema defines the body of a 'protocol' block.
var protocolBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "enabled"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "heuristic", LabelNames: []string{"name"}},
	},
}

var heuristicBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "enabled"},
	},
}

// LoadManifests discovers every .hcl manifest under root in fsys and
// registers the protocols and heuristic sub-dissectors they declare.
// Names must be unique across all loaded manifests, and every heuristic's
// parent protocol must be declared by the same load.
func (r *Registry) LoadManifests(ctx context.Context, fsys fs.FS, root string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading protocol manifests...", "path", root)

	filePaths, err := fsutil.FindFilesByExtension(fsys, root, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifest directory", "path", root, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", root)
		return nil
	}

	parser := hclparse.NewParser()

	var protocols []*Protocol
	var heuristics []*Heuristic

	for _, filePath := range filePaths {
		src, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("failed to read manifest %s: %w", filePath, err)
		}

		hclFile, diags := parser.ParseHCL(src, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
		}

		ps, hs, err := parseManifest(hclFile)
		if err != nil {
			return fmt.Errorf("failed to process manifest %s: %w", filePath, err)
		}
		protocols = append(protocols, ps...)
		heuristics = append(heuristics, hs...)
		logger.Debug("Successfully loaded manifest file", "file", filePath)
	}

	declared := make(map[string]struct{}, len(protocols))
	for _, p := range protocols {
		if _, dup := declared[p.Name]; dup {
			return fmt.Errorf("protocol %q declared more than once", p.Name)
		}
		if _, exists := r.protocols[p.Name]; exists {
			return fmt.Errorf("protocol %q already registered", p.Name)
		}
		declared[p.Name] = struct{}{}
	}
	for _, p := range protocols {
		r.RegisterProtocol(p)
	}
	for _, h := range heuristics {
		if _, exists := r.heuristics[h.Name]; exists {
			return fmt.Errorf("heuristic %q declared more than once", h.Name)
		}
		if _, ok := r.protocols[h.Parent]; !ok {
			return fmt.Errorf("heuristic %q references unknown parent protocol %q", h.Name, h.Parent)
		}
		r.RegisterHeuristic(h)
	}

	logger.Info("Registry loaded successfully.", "protocols", len(protocols), "heuristics", len(heuristics))
	return nil
}

// parseManifest decodes the 'protocol' blocks of one manifest file.
func parseManifest(hclFile *hcl.File) ([]*Protocol, []*Heuristic, error) {
	schema := &manifestRootSchema{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, schema); diags.HasErrors() {
		return nil, nil, diags
	}

	var protocols []*Protocol
	var heuristics []*Heuristic

	for _, parsed := range schema.Protocols {
		bodyContent, diags := parsed.Body.Content(protocolBodySchema)
		if diags.HasErrors() {
			return nil, nil, diags
		}

		p := &Protocol{Name: parsed.Name, Enabled: true}
		if _, diags := hclutil.DecodeAttribute(bodyContent.Attributes, "description", &p.Description); diags.HasErrors() {
			return nil, nil, diags
		}
		if _, diags := hclutil.DecodeAttribute(bodyContent.Attributes, "enabled", &p.Enabled); diags.HasErrors() {
			return nil, nil, diags
		}
		protocols = append(protocols, p)

		for _, block := range bodyContent.Blocks {
			heurContent, diags := block.Body.Content(heuristicBodySchema)
			if diags.HasErrors() {
				return nil, nil, diags
			}
			h := &Heuristic{Name: block.Labels[0], Parent: parsed.Name, Enabled: true}
			if _, diags := hclutil.DecodeAttribute(heurContent.Attributes, "enabled", &h.Enabled); diags.HasErrors() {
				return nil, nil, diags
			}
			heuristics = append(heuristics, h)
		}
	}

	return protocols, heuristics, nil
}
