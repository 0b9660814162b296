// Package huffman implements Huffman prefix-code trees over arbitrary
// alphabets.
//
// A Tree is grown from the weights (occurrence counts) of its letters, using
// any comparable type as the letter type.  Each letter's code is its path
// from the root: 0 for child 0, 1 for child 1.  Letters with a fixed-width
// representation (the sized integer types, including byte and rune) can have
// the tree's topology written with WriteTree or AsBin and read back with
// ReadTree or TreeFromBin.  Compress and Decompress use a byte tree to pack a
// byte stream behind its own topology.
//
// When two subtrees have equal weight, the one that was inserted first is
// merged first, with letters inserted in their Weights.Range order.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
