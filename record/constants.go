// Package record defines the canonical method names used as error prefixes.
package record

const (
	// MethodGenerated is the canonical name for Generated/Generatable.
	MethodGenerated = "Generated"
	// MethodBuildable is the canonical name for Buildable/FromBuilder.
	MethodBuildable = "Buildable"
	// MethodSequence is the canonical name for Sequence/SequenceGenerated.
	MethodSequence = "Sequence"
	// MethodSchemaAdd is the canonical name for Schema.Add.
	MethodSchemaAdd = "Schema.Add"
	// MethodOverride is the canonical name for Override.
	MethodOverride = "Override"
	// MethodWithLogger is the canonical name for the WithLogger option.
	MethodWithLogger = "WithLogger"
)

// defaultSchemaName labels log entries of schemas created without WithName.
const defaultSchemaName = "record"
