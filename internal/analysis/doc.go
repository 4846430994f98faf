// Package analysis contains the core types and engine for LLM-based code
// auditing.
//
// It assembles the system and user prompts from the code, filename, detected
// language, and enabled aspects (quality/style, security, performance), and
// normalizes the untrusted JSON reply from the model into a fixed-shape
// [Result]: exactly three integer axis scores in [1,10], a validated issue
// list, recommendations, and an overall score reconciled against the
// configured weights.
//
// Normalization never fails. Malformed JSON, transport errors, and schema
// mismatches all collapse into the uniform degraded result produced by
// [ErrorResult], so the presentation layer renders every outcome the same
// way.
//
// One known quirk is preserved deliberately: a model-supplied overall score
// of exactly 5 is indistinguishable from an omitted field and is always
// recomputed from the weighted axis scores.
package analysis
