// Package escape implements HTML escaping into a buffer.
//
// Exactly five characters are replaced, in encounter order:
//
//	"  &quot;
//	&  &amp;
//	<  &lt;
//	>  &gt;
//	'  &#039;
//
// Every other character, including all non-ASCII text, is copied unchanged.
package escape
