// This file contains the logic for translating the HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/ctxlog"
	"github.com/vk/schemagen/internal/options"
	"github.com/vk/schemagen/internal/schema"
)

// translateGenerator converts the `generator` block into the agnostic model.
func translateGenerator(g *schema.Generator) *config.Generator {
	return &config.Generator{
		Type:    g.Type,
		Command: g.Command,
		Args:    slices.Clone(g.Args),
		Env:     maps.Clone(g.Env),
	}
}

// translateSource converts a `source` block into the agnostic model. Every
// remaining attribute must name a known option and carry a value of the
// option's kind; all violations in the block are reported together.
func translateSource(ctx context.Context, s *schema.Source, evalCtx *hcl.EvalContext) (*config.Source, error) {
	logger := ctxlog.FromContext(ctx)

	src := &config.Source{
		Default:  s.Default,
		FileName: s.FileName,
	}
	if s.Options == nil {
		return src, nil
	}
	src.Pos = s.Options.MissingItemRange().String()

	attrs, diags := s.Options.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	// Attributes come back as a map; sort by position so assignments and
	// errors follow the file.
	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	var result *multierror.Error
	for _, attr := range sorted {
		opt, err := options.ParseOption(attr.Name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", attr.Range, err))
			continue
		}
		val, err := decodeOption(opt, attr.Expr, evalCtx)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", attr.Range, err))
			continue
		}
		src.Options = append(src.Options, config.Assignment{Option: opt, Value: val})
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	logger.Debug("Translated source block.", "default", src.Default, "file_name", src.FileName, "options", len(src.Options))
	return src, nil
}
