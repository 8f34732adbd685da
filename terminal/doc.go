// Package terminal presents rendered board pictures on a tcell screen.
//
// Pictures are drawn with upper half blocks: each character cell carries two stacked
// pixels, the top one as foreground and the bottom one as background. Colors are sent as
// 24-bit RGB or snapped to the xterm 256-color palette.
package terminal
