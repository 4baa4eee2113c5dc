// Tokenization rules (§4.1):
//
//   - ';' starts a line comment, discarded through end-of-line.
//   - '(' and ')' are always their own single-character tokens.
//   - any other maximal run of non-whitespace, non-paren characters is
//     one token.
//   - whitespace separates tokens and is otherwise discarded.
//
// The tokenizer is total: it never fails. Lexical validity (is this
// token a well-formed number, a boolean, a symbol, or garbage) is the
// reader's responsibility, not the tokenizer's.
package lexer
