package mcpserver

// NoteFormatContract describes the per-day markdown file layout for LLM
// consumers reading or writing vault files directly.
const NoteFormatContract = `# Daybook Day File Format

Daybook stores one markdown file per day inside the vault directory. Files it
creates follow this structure.

## Structure

` + "```" + `markdown
---
date: 2025-10-24
---

# Notes

- 09:15:00 First note of the day
- 14:30:45 Another note
` + "```" + `

## Rules

1. **Frontmatter** is written on first creation: a ` + "`" + `date:` + "`" + ` field in ISO form
   (YYYY-MM-DD). Files created from a user template may differ.
2. **Entries** are single lines in one of two representations, never mixed:
   - Bullet: ` + "`" + `- HH:MM:SS content` + "`" + `
   - Table: ` + "`" + `| HH:MM:SS | content |` + "`" + ` under a two-line header block
     (` + "`" + `| Time | Note |` + "`" + ` then ` + "`" + `|------|----------|` + "`" + `).
3. **Table blocks are contiguous**: no blank line is allowed between the
   header, the separator, and the data rows.
4. **Sections** are markdown headings; entries scoped to a category live
   between their heading and the next one.
5. A legacy bullet form ` + "`" + `- [HH:MM:SS] content` + "`" + ` is recognized on read but
   never written.
6. **Encoding** is UTF-8 with a trailing newline.
`
