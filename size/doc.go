// Package size parses compact textual size specifications used by sequence
// layouts and measures static ones.
//
// # Grammar
//
// Sizes are case sensitive and never contain whitespace:
//
//	@MAX(size,size,...)  largest of relations, resolved by layout pass
//	wrap                 size of the content
//	1w                   weight, share of the remaining space
//	50%                  ratio of the container size
//	10px                 pixels
//	10dp                 pixels as well (historical, not density independent)
//	10dip                density independent pixels
//	12sp                 scale independent pixels
//	2mm                  millimeters
//	1.5pg                paragraph units
//	@2131099648          dimension resource, resolved to pixels when parsed
//	50%name              ratio of the size of another element
//	align@name           aligned with another element
//
// Element names could be bare, "@id/name" or "@+id/name".
//
// # Classification
//
// Pixel, Dp, Sp, Millimeter, Paragraph and Ratio are static and could be
// measured with [MeasureStatic]. ViewRatio, Align and Max are element related,
// Wrap and Weight depend on results of layout pass.
//
// # Usage
//
//	p := size.NewParser(logger, resources)
//	s, err := p.Parse("@MAX(10dip,20%)")
//	if err != nil {
//	    return err
//	}
//	if size.IsStatic(s) {
//	    px := size.MeasureStatic(s, containerWidth, display)
//	}
package size
