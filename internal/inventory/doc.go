// Package inventory holds the in-memory working copy of the inventory
// and the validation rules for asset codes.
//
// A Dataset is loaded once per session from the backing workbook and is
// the single source of truth for lookups while the session runs. Only
// the reconciler mutates it; every other component reads snapshots.
package inventory
