// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CapabilitiesColumns holds the columns for the "capabilities" table.
	CapabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CapabilitiesTable holds the schema information for the "capabilities" table.
	CapabilitiesTable = &schema.Table{
		Name:       "capabilities",
		Columns:    CapabilitiesColumns,
		PrimaryKey: []*schema.Column{CapabilitiesColumns[0]},
	}
	// ServerHealthColumns holds the columns for the "server_health" table.
	ServerHealthColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "offline", "error", "unknown"}, Default: "unknown"},
		{Name: "last_check", Type: field.TypeTime, Nullable: true},
		{Name: "last_successful_connection", Type: field.TypeTime, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_response_time", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "server_id", Type: field.TypeString, Unique: true},
	}
	// ServerHealthTable holds the schema information for the "server_health" table.
	ServerHealthTable = &schema.Table{
		Name:       "server_health",
		Columns:    ServerHealthColumns,
		PrimaryKey: []*schema.Column{ServerHealthColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "server_health_servers_health",
				Columns:    []*schema.Column{ServerHealthColumns[7]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ServersColumns holds the columns for the "servers" table.
	ServersColumns = []*schema.Column{
		{Name: "server_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transport_kind", Type: field.TypeString, Default: "stdio"},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "args", Type: field.TypeJSON, Nullable: true},
		{Name: "env", Type: field.TypeJSON, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServersTable holds the schema information for the "servers" table.
	ServersTable = &schema.Table{
		Name:       "servers",
		Columns:    ServersColumns,
		PrimaryKey: []*schema.Column{ServersColumns[0]},
	}
	// ServerCapabilitiesColumns holds the columns for the "server_capabilities" table.
	ServerCapabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "server_id", Type: field.TypeString},
		{Name: "capability_id", Type: field.TypeInt},
	}
	// ServerCapabilitiesTable holds the schema information for the "server_capabilities" table.
	ServerCapabilitiesTable = &schema.Table{
		Name:       "server_capabilities",
		Columns:    ServerCapabilitiesColumns,
		PrimaryKey: []*schema.Column{ServerCapabilitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "server_capabilities_servers_server",
				Columns:    []*schema.Column{ServerCapabilitiesColumns[1]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "server_capabilities_capabilities_capability",
				Columns:    []*schema.Column{ServerCapabilitiesColumns[2]},
				RefColumns: []*schema.Column{CapabilitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "servercapability_server_id",
				Unique:  false,
				Columns: []*schema.Column{ServerCapabilitiesColumns[1]},
			},
			{
				Name:    "servercapability_capability_id",
				Unique:  false,
				Columns: []*schema.Column{ServerCapabilitiesColumns[2]},
			},
			{
				Name:    "servercapability_server_id_capability_id",
				Unique:  true,
				Columns: []*schema.Column{ServerCapabilitiesColumns[1], ServerCapabilitiesColumns[2]},
			},
		},
	}
	// ServerTagsColumns holds the columns for the "server_tags" table.
	ServerTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tag", Type: field.TypeString},
		{Name: "server_id", Type: field.TypeString},
	}
	// ServerTagsTable holds the schema information for the "server_tags" table.
	ServerTagsTable = &schema.Table{
		Name:       "server_tags",
		Columns:    ServerTagsColumns,
		PrimaryKey: []*schema.Column{ServerTagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "server_tags_servers_tags",
				Columns:    []*schema.Column{ServerTagsColumns[2]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "servertag_tag",
				Unique:  false,
				Columns: []*schema.Column{ServerTagsColumns[1]},
			},
			{
				Name:    "servertag_server_id_tag",
				Unique:  true,
				Columns: []*schema.Column{ServerTagsColumns[2], ServerTagsColumns[1]},
			},
		},
	}
	// ToolsColumns holds the columns for the "tools" table.
	ToolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "server_id", Type: field.TypeString},
	}
	// ToolsTable holds the schema information for the "tools" table.
	ToolsTable = &schema.Table{
		Name:       "tools",
		Columns:    ToolsColumns,
		PrimaryKey: []*schema.Column{ToolsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tools_servers_tools",
				Columns:    []*schema.Column{ToolsColumns[4]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tool_server_id",
				Unique:  false,
				Columns: []*schema.Column{ToolsColumns[4]},
			},
			{
				Name:    "tool_server_id_name",
				Unique:  true,
				Columns: []*schema.Column{ToolsColumns[4], ToolsColumns[1]},
			},
		},
	}
	// ServerUsageColumns holds the columns for the "server_usage" table.
	ServerUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "duration", Type: field.TypeFloat64},
		{Name: "success", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "server_id", Type: field.TypeString},
	}
	// ServerUsageTable holds the schema information for the "server_usage" table.
	ServerUsageTable = &schema.Table{
		Name:       "server_usage",
		Columns:    ServerUsageColumns,
		PrimaryKey: []*schema.Column{ServerUsageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "server_usage_servers_usage",
				Columns:    []*schema.Column{ServerUsageColumns[5]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_server_id",
				Unique:  false,
				Columns: []*schema.Column{ServerUsageColumns[5]},
			},
			{
				Name:    "usagerecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ServerUsageColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CapabilitiesTable,
		ServerHealthTable,
		ServersTable,
		ServerCapabilitiesTable,
		ServerTagsTable,
		ToolsTable,
		ServerUsageTable,
	}
)

func init() {
	ServerHealthTable.ForeignKeys[0].RefTable = ServersTable
	ServerHealthTable.Annotation = &entsql.Annotation{
		Table: "server_health",
	}
	ServerCapabilitiesTable.ForeignKeys[0].RefTable = ServersTable
	ServerCapabilitiesTable.ForeignKeys[1].RefTable = CapabilitiesTable
	ServerTagsTable.ForeignKeys[0].RefTable = ServersTable
	ToolsTable.ForeignKeys[0].RefTable = ServersTable
	ServerUsageTable.ForeignKeys[0].RefTable = ServersTable
	ServerUsageTable.Annotation = &entsql.Annotation{
		Table: "server_usage",
	}
}
