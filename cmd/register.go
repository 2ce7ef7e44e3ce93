//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cmd provides the commands to call accviz from the command line.
package cmd

import (
	_ "codeberg.org/t73fde/accviz/encoder/htmlenc"   // Allow to use HTML encoder.
	_ "codeberg.org/t73fde/accviz/encoder/nativeenc" // Allow to use native encoder.
	_ "codeberg.org/t73fde/accviz/encoder/textenc"   // Allow to use text encoder.
	_ "codeberg.org/t73fde/accviz/parser/classdiag"  // Allow to use class diagram parser.
	_ "codeberg.org/t73fde/accviz/parser/flowchart"  // Allow to use flowchart parser.
	_ "codeberg.org/t73fde/accviz/parser/gantt"      // Allow to use Gantt chart parser.
	_ "codeberg.org/t73fde/accviz/parser/generic"    // Allow to use generic parser.
	_ "codeberg.org/t73fde/accviz/parser/journey"    // Allow to use user journey parser.
	_ "codeberg.org/t73fde/accviz/parser/mindmap"    // Allow to use mind map parser.
	_ "codeberg.org/t73fde/accviz/parser/pie"        // Allow to use pie chart parser.
	_ "codeberg.org/t73fde/accviz/parser/timeline"   // Allow to use timeline parser.
	_ "codeberg.org/t73fde/accviz/parser/xychart"    // Allow to use xy chart parser.
)
