package dictionary

// Built-in atom definitions for the FDO91 protocol set.
//
// This table is generated from the master atom listing; edit the listing
// and regenerate rather than patching entries by hand. Enum tables shared
// by several atoms are hoisted into vars below.

var objectClasses = EnumTable{
	"org_group":    0,
	"ind_group":    1,
	"trigger":      2,
	"ornament":     3,
	"view":         4,
	"edit_view":    5,
	"range":        6,
	"select_range": 7,
	"list_box":     8,
	"combo_box":    9,
	"dms_object":   10,
	"tab_group":    11,
	"tab_page":     12,
}

var triggerStyles = EnumTable{
	"plain":   0,
	"default": 1,
	"cancel":  2,
	"picture": 3,
	"tool":    4,
}

var frameStyles = EnumTable{
	"none":        0,
	"plain":       1,
	"inset":       2,
	"raised":      3,
	"single_line": 4,
	"double_line": 5,
	"shadow":      6,
}

var orientations = EnumTable{
	"vff": 0,
	"vfr": 1,
	"hff": 2,
	"hfr": 3,
}

var fontIds = EnumTable{
	"arial":         0,
	"courier":       1,
	"times":         2,
	"system":        3,
	"ms_sans_serif": 4,
	"fixedsys":      5,
}

var criterionKinds = EnumTable{
	"equal":        0,
	"not_equal":    1,
	"less_than":    2,
	"greater_than": 3,
	"in_range":     4,
}

var atrStyleBits = EnumTable{
	"bold":        0x0001,
	"italic":      0x0002,
	"underline":   0x0004,
	"strikeout":   0x0008,
	"superscript": 0x0010,
	"subscript":   0x0020,
}

var capabilityBits = EnumTable{
	"text":     0x0001,
	"graphics": 0x0002,
	"sound":    0x0004,
	"filexfer": 0x0008,
	"chat":     0x0010,
}

var builtinDefs = []*AtomDef{
	// proto 0: uni -- universal stream control
	{Name: "uni_start_stream", Proto: 0, Code: 0, Type: TypeNone, Flags: FlagIndentNext},
	{Name: "uni_end_stream", Proto: 0, Code: 1, Type: TypeNone, Flags: FlagOutdent},
	{Name: "uni_abort", Proto: 0, Code: 2, Type: TypeNone},
	{Name: "uni_sync_skip", Proto: 0, Code: 3, Type: TypeWord},
	{Name: "uni_change_stream_id", Proto: 0, Code: 4, Type: TypeWord},
	{Name: "uni_use_last_atom_string", Proto: 0, Code: 5, Type: TypeNone},
	{Name: "uni_use_last_atom_value", Proto: 0, Code: 6, Type: TypeNone},
	{Name: "uni_save_result", Proto: 0, Code: 7, Type: TypeNone},
	{Name: "uni_start_loop", Proto: 0, Code: 8, Type: TypeWord, Flags: FlagIndentNext},
	{Name: "uni_end_loop", Proto: 0, Code: 9, Type: TypeNone, Flags: FlagOutdent},
	{Name: "uni_break_loop", Proto: 0, Code: 10, Type: TypeNone},
	{Name: "uni_wait_on", Proto: 0, Code: 11, Type: TypeNone},
	{Name: "uni_wait_off", Proto: 0, Code: 12, Type: TypeNone},
	{Name: "uni_get_result", Proto: 0, Code: 13, Type: TypeNone},
	{Name: "uni_hold_atoms", Proto: 0, Code: 14, Type: TypeNone},
	{Name: "uni_release_atoms", Proto: 0, Code: 15, Type: TypeNone},
	{Name: "uni_invoke_local", Proto: 0, Code: 16, Type: TypeWord},
	{Name: "uni_set_data_length", Proto: 0, Code: 17, Type: TypeDWord},
	{Name: "uni_next_atom_typed", Proto: 0, Code: 18, Type: TypeByte},
	{Name: "uni_command", Proto: 0, Code: 32, Type: TypeString},

	// proto 1: man -- display manager
	{Name: "man_start_object", Proto: 1, Code: 0, Type: TypeObjectType, Enum: objectClasses, Flags: FlagIndentNext},
	{Name: "man_end_object", Proto: 1, Code: 1, Type: TypeNone, Flags: FlagOutdent},
	{Name: "man_close_update", Proto: 1, Code: 2, Type: TypeNone},
	{Name: "man_update_display", Proto: 1, Code: 3, Type: TypeNone},
	{Name: "man_clear_object", Proto: 1, Code: 4, Type: TypeNone},
	{Name: "man_set_context_relative", Proto: 1, Code: 5, Type: TypeByte},
	{Name: "man_set_context_globalid", Proto: 1, Code: 6, Type: TypeGid},
	{Name: "man_end_context", Proto: 1, Code: 7, Type: TypeNone},
	{Name: "man_preset_gid", Proto: 1, Code: 8, Type: TypeGid},
	{Name: "man_append_data", Proto: 1, Code: 9, Type: TypeString},
	{Name: "man_replace_data", Proto: 1, Code: 10, Type: TypeString},
	{Name: "man_insert_data", Proto: 1, Code: 11, Type: TypeString},
	{Name: "man_delete_data", Proto: 1, Code: 12, Type: TypeNone},
	{Name: "man_make_focus", Proto: 1, Code: 13, Type: TypeNone},
	{Name: "man_display_popup_menu", Proto: 1, Code: 14, Type: TypeGid},
	{Name: "man_close_object", Proto: 1, Code: 15, Type: TypeNone},
	{Name: "man_item_get", Proto: 1, Code: 16, Type: TypeWord},
	{Name: "man_item_set", Proto: 1, Code: 17, Type: TypeWord},
	{Name: "man_set_response_id", Proto: 1, Code: 18, Type: TypeWord},
	{Name: "man_do_magic_response_id", Proto: 1, Code: 19, Type: TypeNone},
	{Name: "man_enable_one_shot_timer", Proto: 1, Code: 20, Type: TypeDWord},
	{Name: "man_start_sibling", Proto: 1, Code: 21, Type: TypeObjectType, Enum: objectClasses, Flags: FlagIndentNext},
	{Name: "man_set_domain", Proto: 1, Code: 33, Type: TypeEnum, Enum: EnumTable{"local": 0, "global": 1, "session": 2}},

	// proto 2: de -- data extraction
	{Name: "de_start_extraction", Proto: 2, Code: 0, Type: TypeNone, Flags: FlagIndentNext},
	{Name: "de_end_extraction", Proto: 2, Code: 1, Type: TypeNone, Flags: FlagOutdent},
	{Name: "de_data", Proto: 2, Code: 2, Type: TypeString},
	{Name: "de_typed_data", Proto: 2, Code: 3, Type: TypeList, ListShape: []ValueType{TypeByte, TypeString}},
	{Name: "de_get_data", Proto: 2, Code: 4, Type: TypeGid},
	{Name: "de_zero_data", Proto: 2, Code: 5, Type: TypeNone},
	{Name: "de_increment_data", Proto: 2, Code: 6, Type: TypeWord},
	{Name: "de_validate_input", Proto: 2, Code: 7, Type: TypeEnum, Enum: criterionKinds},

	// proto 3: act -- action management
	{Name: "act_set_criterion", Proto: 3, Code: 0, Type: TypeEnum, Enum: criterionKinds},
	{Name: "act_do_action", Proto: 3, Code: 1, Type: TypeStream},
	{Name: "act_replace_action", Proto: 3, Code: 2, Type: TypeStream},
	{Name: "act_replace_select_action", Proto: 3, Code: 3, Type: TypeStream},
	{Name: "act_append_select_action", Proto: 3, Code: 4, Type: TypeStream},
	{Name: "act_prepend_action", Proto: 3, Code: 5, Type: TypeStream},
	{Name: "act_set_test_value", Proto: 3, Code: 6, Type: TypeWord},
	{Name: "act_test_data", Proto: 3, Code: 7, Type: TypeGid},
	{Name: "act_modify_action", Proto: 3, Code: 8, Type: TypeStream},
	{Name: "act_clear_action", Proto: 3, Code: 9, Type: TypeNone},
	{Name: "act_guard_gid", Proto: 3, Code: 10, Type: TypeGid},

	// proto 4: fm -- file management
	{Name: "fm_start", Proto: 4, Code: 0, Type: TypeNone, Flags: FlagIndentNext},
	{Name: "fm_end", Proto: 4, Code: 1, Type: TypeNone, Flags: FlagOutdent},
	{Name: "fm_item", Proto: 4, Code: 2, Type: TypeList, ListShape: []ValueType{TypeByte, TypeString}},
	{Name: "fm_set_title", Proto: 4, Code: 3, Type: TypeString},
	{Name: "fm_set_directory", Proto: 4, Code: 4, Type: TypeString},
	{Name: "fm_file_typing", Proto: 4, Code: 5, Type: TypeEnum, Enum: EnumTable{"any": 0, "text": 1, "binary": 2, "image": 3, "sound": 4}},
	{Name: "fm_open_dialog", Proto: 4, Code: 6, Type: TypeNone},
	{Name: "fm_save_dialog", Proto: 4, Code: 7, Type: TypeNone},
	{Name: "fm_selection_mask", Proto: 4, Code: 8, Type: TypeString},
	{Name: "fm_confirm_overwrite", Proto: 4, Code: 9, Type: TypeByte},
	{Name: "fm_transfer_params", Proto: 4, Code: 10, Type: TypeList, ListShape: []ValueType{TypeByte, TypeByte, TypeWord}},

	// proto 5: if -- conditionals
	{Name: "if_last_return_true_then", Proto: 5, Code: 0, Type: TypeStream},
	{Name: "if_last_return_false_then", Proto: 5, Code: 1, Type: TypeStream},
	{Name: "if_data_true_then", Proto: 5, Code: 2, Type: TypeStream},
	{Name: "if_data_false_then", Proto: 5, Code: 3, Type: TypeStream},
	{Name: "if_compare_data", Proto: 5, Code: 4, Type: TypeList, ListShape: []ValueType{TypeWord, TypeWord}},

	// proto 6: idb -- interim database
	{Name: "idb_get_data", Proto: 6, Code: 0, Type: TypeGid},
	{Name: "idb_set_context", Proto: 6, Code: 1, Type: TypeGid},
	{Name: "idb_start_obj", Proto: 6, Code: 2, Type: TypeNone, Flags: FlagIndentNext},
	{Name: "idb_end_obj", Proto: 6, Code: 3, Type: TypeNone, Flags: FlagOutdent},
	{Name: "idb_append_data", Proto: 6, Code: 4, Type: TypeString},
	{Name: "idb_atr_dod", Proto: 6, Code: 5, Type: TypeBitSet, Enum: capabilityBits},
	{Name: "idb_delete_obj", Proto: 6, Code: 6, Type: TypeNone},
	{Name: "idb_exists", Proto: 6, Code: 7, Type: TypeGid},
	{Name: "idb_change_context", Proto: 6, Code: 8, Type: TypeByte},

	// proto 7: buf -- buffer management
	{Name: "buf_start_buffer", Proto: 7, Code: 0, Type: TypeNone, Flags: FlagIndentNext},
	{Name: "buf_close_buffer", Proto: 7, Code: 1, Type: TypeNone, Flags: FlagOutdent},
	{Name: "buf_set_data_atom", Proto: 7, Code: 2, Type: TypeRaw},
	{Name: "buf_flush", Proto: 7, Code: 3, Type: TypeNone},
	{Name: "buf_set_name", Proto: 7, Code: 4, Type: TypeString},

	// proto 8: var -- variable store
	{Name: "var_number_set", Proto: 8, Code: 0, Type: TypeList, ListShape: []ValueType{TypeByte, TypeDWord}},
	{Name: "var_number_get", Proto: 8, Code: 1, Type: TypeByte},
	{Name: "var_string_set", Proto: 8, Code: 2, Type: TypeList, ListShape: []ValueType{TypeByte, TypeString}},
	{Name: "var_string_get", Proto: 8, Code: 3, Type: TypeByte},
	{Name: "var_number_save", Proto: 8, Code: 4, Type: TypeByte},
	{Name: "var_string_save", Proto: 8, Code: 5, Type: TypeByte},
	{Name: "var_zero", Proto: 8, Code: 6, Type: TypeByte},

	// proto 10: chat
	{Name: "chat_add_user", Proto: 10, Code: 0, Type: TypeString},
	{Name: "chat_remove_user", Proto: 10, Code: 1, Type: TypeString},
	{Name: "chat_message", Proto: 10, Code: 2, Type: TypeString},
	{Name: "chat_room_name", Proto: 10, Code: 3, Type: TypeString},
	{Name: "chat_user_count", Proto: 10, Code: 4, Type: TypeWord},

	// proto 11: async
	{Name: "async_exec", Proto: 11, Code: 0, Type: TypeStream},
	{Name: "async_online", Proto: 11, Code: 1, Type: TypeNone},
	{Name: "async_offline", Proto: 11, Code: 2, Type: TypeNone},
	{Name: "async_alert", Proto: 11, Code: 3, Type: TypeString},
	{Name: "async_error", Proto: 11, Code: 4, Type: TypeWord},

	// proto 16: mat -- display attributes
	{Name: "mat_relative_tag", Proto: 16, Code: 0, Type: TypeByte},
	{Name: "mat_object_id", Proto: 16, Code: 1, Type: TypeGid},
	{Name: "mat_art_id", Proto: 16, Code: 2, Type: TypeGid},
	{Name: "mat_title", Proto: 16, Code: 3, Type: TypeString},
	{Name: "mat_size", Proto: 16, Code: 4, Type: TypeList, ListShape: []ValueType{TypeWord, TypeWord}},
	{Name: "mat_position", Proto: 16, Code: 5, Type: TypeList, ListShape: []ValueType{TypeWord, TypeWord}},
	{Name: "mat_precise_width", Proto: 16, Code: 6, Type: TypeWord},
	{Name: "mat_precise_height", Proto: 16, Code: 7, Type: TypeWord},
	{Name: "mat_orientation", Proto: 16, Code: 8, Type: TypeEnum, Enum: orientations},
	{Name: "mat_font_id", Proto: 16, Code: 9, Type: TypeEnum, Enum: fontIds},
	{Name: "mat_font_size", Proto: 16, Code: 10, Type: TypeByte},
	{Name: "mat_font_style", Proto: 16, Code: 11, Type: TypeBitSet, Enum: atrStyleBits},
	{Name: "mat_color_face", Proto: 16, Code: 12, Type: TypeDWord},
	{Name: "mat_color_text", Proto: 16, Code: 13, Type: TypeDWord},
	{Name: "mat_color_frame", Proto: 16, Code: 14, Type: TypeDWord},
	{Name: "mat_bool_default", Proto: 16, Code: 15, Type: TypeByte},
	{Name: "mat_bool_disabled", Proto: 16, Code: 16, Type: TypeByte},
	{Name: "mat_bool_hidden", Proto: 16, Code: 17, Type: TypeByte},
	{Name: "mat_bool_invert", Proto: 16, Code: 18, Type: TypeByte},
	{Name: "mat_bool_resize_vertical", Proto: 16, Code: 19, Type: TypeByte},
	{Name: "mat_bool_resize_horizontal", Proto: 16, Code: 20, Type: TypeByte},
	{Name: "mat_capacity", Proto: 16, Code: 21, Type: TypeWord},
	{Name: "mat_ruler", Proto: 16, Code: 22, Type: TypeByte},
	{Name: "mat_scroll_threshold", Proto: 16, Code: 23, Type: TypeWord},
	{Name: "mat_spacing", Proto: 16, Code: 24, Type: TypeByte},
	{Name: "mat_plus_group", Proto: 16, Code: 25, Type: TypeByte},
	{Name: "mat_paragraph", Proto: 16, Code: 26, Type: TypeByte},
	{Name: "mat_secure_form", Proto: 16, Code: 27, Type: TypeByte},
	{Name: "mat_log_object", Proto: 16, Code: 28, Type: TypeByte},
	{Name: "mat_validation", Proto: 16, Code: 29, Type: TypeEnum, Enum: criterionKinds},
	{Name: "mat_help_context", Proto: 16, Code: 30, Type: TypeWord},
	{Name: "mat_url", Proto: 16, Code: 31, Type: TypeString},
	{Name: "mat_context_help", Proto: 16, Code: 64, Type: TypeString},
	{Name: "mat_shorthand", Proto: 16, Code: 65, Type: TypeString},
	{Name: "mat_tab_order", Proto: 16, Code: 66, Type: TypeWord},
	{Name: "mat_border_width", Proto: 16, Code: 67, Type: TypeByte},
	{Name: "mat_frame_style", Proto: 16, Code: 87, Type: TypeEnum, Enum: frameStyles},
	{Name: "mat_trigger_style", Proto: 16, Code: 88, Type: TypeEnum, Enum: triggerStyles},
}

// Builtin returns the dictionary of built-in FDO91 atom definitions.
func Builtin() *Dictionary {
	d, err := New(builtinDefs)
	if err != nil {
		// the generated table is validated at generation time
		panic(err)
	}
	return d
}
