package language

import "strings"

func words(s string) []string {
	return strings.Fields(s)
}

func init() {
	register(Definition{
		ID:                 Swift,
		Name:               "swift",
		Extensions:         []string{".swift"},
		Keywords:           words("associatedtype class deinit enum extension fileprivate func import init inout internal let open operator private protocol public rethrows static struct subscript typealias var break case continue default defer do else fallthrough for guard if in repeat return switch where while as catch false is nil super self Self throw throws true try async await actor some any weak unowned lazy final override mutating nonmutating convenience required"),
		Types:              words("Int Int8 Int16 Int32 Int64 UInt UInt8 UInt16 UInt32 UInt64 Float Double Bool String Character Array Dictionary Set Optional Any AnyObject Void Never Result Error Data Date URL"),
		StringDelimiters:   []Delimiter{{`"""`, `"""`}, {`"`, `"`}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(func)\s+([A-Za-z_][A-Za-z0-9_]*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("func"),
		VariableKeywords:   words("var let"),
	})
	register(Definition{
		ID:                 Python,
		Name:               "python",
		Extensions:         []string{".py", ".pyw"},
		Shebangs:           []string{"#!/usr/bin/env python", "#!/usr/bin/python"},
		Keywords:           words("False None True and as assert async await break class continue def del elif else except finally for from global if import in is lambda nonlocal not or pass raise return try while with yield match case"),
		Types:              words("int float complex str bytes bytearray bool list tuple dict set frozenset object type range memoryview"),
		StringDelimiters:   []Delimiter{{`"""`, `"""`}, {"'''", "'''"}, {`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"#", "\n"}},
		FunctionPattern:    `\b(def)\s+([A-Za-z_]\w*)`,
		OperatorCharacters: "+-*/%=<>!&|^~@:",
		FunctionKeywords:   words("def lambda"),
	})
	register(Definition{
		ID:                 JavaScript,
		Name:               "javascript",
		Extensions:         []string{".js", ".mjs", ".cjs", ".jsx"},
		Shebangs:           []string{"#!/usr/bin/env node"},
		Keywords:           words("break case catch class const continue debugger default delete do else export extends finally for function if import in instanceof let new return super switch this throw try typeof var void while with yield async await of static get set null undefined true false"),
		Types:              words("Array Boolean Date Error Function JSON Map Math Number Object Promise RegExp Set String Symbol WeakMap WeakSet BigInt"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}, {"`", "`"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(function)\s*\*?\s*([A-Za-z_$][\w$]*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("function"),
		VariableKeywords:   words("var let const"),
	})
	register(Definition{
		ID:                 TypeScript,
		Name:               "typescript",
		Extensions:         []string{".ts", ".tsx", ".mts", ".cts"},
		Shebangs:           []string{"#!/usr/bin/env ts-node"},
		Keywords:           words("abstract as any async await break case catch class const constructor continue declare default delete do else enum export extends false finally for from function get if implements import in infer instanceof interface is keyof let module namespace never new null of private protected public readonly return set static super switch this throw true try type typeof undefined unique unknown var void while with yield"),
		Types:              words("string number boolean bigint symbol object Array Boolean Date Error Function Map Number Object Promise Record Partial Readonly RegExp Set String"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}, {"`", "`"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(function)\s*\*?\s*([A-Za-z_$][\w$]*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("function"),
		VariableKeywords:   words("var let const"),
	})
	register(Definition{
		ID:                 Java,
		Name:               "java",
		Extensions:         []string{".java"},
		Keywords:           words("abstract assert break case catch class const continue default do else enum extends final finally for goto if implements import instanceof interface native new package private protected public return static strictfp super switch synchronized this throw throws transient try volatile while var record sealed permits yield true false null"),
		Types:              words("boolean byte char double float int long short void String Object Integer Long Double Float Boolean Character List Map Set ArrayList HashMap Optional"),
		StringDelimiters:   []Delimiter{{`"""`, `"""`}, {`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b([A-Za-z_][\w<>\[\]]*)\s+(?!(?:if|while|for|switch|catch|return|new|else)\b)([A-Za-z_]\w*)\s*(?=\()`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("void"),
		VariableKeywords:   words("var final"),
	})
	register(Definition{
		ID:                 Kotlin,
		Name:               "kotlin",
		Extensions:         []string{".kt", ".kts"},
		Keywords:           words("as break class continue do else false for fun if in interface is null object package return super this throw true try typealias typeof val var when while by catch constructor delegate dynamic field file finally get import init param property receiver set setparam where abstract annotation companion const crossinline data enum expect external final infix inline inner internal lateinit noinline open operator out override private protected public reified sealed suspend tailrec vararg"),
		Types:              words("Any Unit Nothing Int Long Short Byte Double Float Boolean Char String Array List MutableList Map MutableMap Set Pair"),
		StringDelimiters:   []Delimiter{{`"""`, `"""`}, {`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(fun)\s+(?:<[^>]*>\s*)?(?:[A-Za-z_][\w.]*\.)?([A-Za-z_]\w*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("fun"),
		VariableKeywords:   words("val var"),
	})
	register(Definition{
		ID:                 Go,
		Name:               "go",
		Extensions:         []string{".go"},
		Keywords:           words("break case chan const continue default defer else fallthrough for func go goto if import interface map package range return select struct switch type var true false nil iota"),
		Types:              words("bool byte complex64 complex128 error float32 float64 int int8 int16 int32 int64 rune string uint uint8 uint16 uint32 uint64 uintptr any comparable"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"`", "`"}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(func)\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)`,
		OperatorCharacters: "+-*/%=<>!&|^~:",
		FunctionKeywords:   words("func"),
		VariableKeywords:   words("var const :="),
	})
	register(Definition{
		ID:                 Rust,
		Name:               "rust",
		Extensions:         []string{".rs"},
		Keywords:           words("as async await break const continue crate dyn else enum extern false fn for if impl in let loop match mod move mut pub ref return self Self static struct super trait true type unsafe use where while"),
		Types:              words("i8 i16 i32 i64 i128 isize u8 u16 u32 u64 u128 usize f32 f64 bool char str String Vec Option Result Box Rc Arc HashMap HashSet"),
		StringDelimiters:   []Delimiter{{`"`, `"`}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(fn)\s+([A-Za-z_]\w*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("fn"),
		VariableKeywords:   words("let const static"),
	})
	register(Definition{
		ID:                 C,
		Name:               "c",
		Extensions:         []string{".c", ".h"},
		Keywords:           words("auto break case const continue default do else enum extern for goto if inline register restrict return sizeof static struct switch typedef union volatile while NULL true false"),
		Types:              words("char double float int long short signed unsigned void bool size_t ssize_t int8_t int16_t int32_t int64_t uint8_t uint16_t uint32_t uint64_t FILE"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b([A-Za-z_][\w<>\[\]]*)\s+(?!(?:if|while|for|switch|catch|return|new|else)\b)([A-Za-z_]\w*)\s*(?=\()`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("void"),
		VariableKeywords:   words("const static auto"),
	})
	register(Definition{
		ID:                 CPP,
		Name:               "cpp",
		Extensions:         []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"},
		Keywords:           words("alignas alignof and asm auto break case catch class const constexpr const_cast continue decltype default delete do dynamic_cast else enum explicit export extern false for friend goto if inline mutable namespace new noexcept not nullptr operator or private protected public register reinterpret_cast return sizeof static static_assert static_cast struct switch template this throw true try typedef typeid typename union using virtual volatile while override final"),
		Types:              words("bool char char16_t char32_t double float int long short signed unsigned void wchar_t size_t string vector map set unordered_map shared_ptr unique_ptr"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b([A-Za-z_][\w<>\[\]]*)\s+(?!(?:if|while|for|switch|catch|return|new|else)\b)([A-Za-z_]\w*)\s*(?=\()`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("void"),
		VariableKeywords:   words("auto const"),
	})
	register(Definition{
		ID:                 CSharp,
		Name:               "csharp",
		Extensions:         []string{".cs"},
		Keywords:           words("abstract as base break case catch checked class const continue default delegate do else enum event explicit extern false finally fixed for foreach goto if implicit in interface internal is lock namespace new null operator out override params private protected public readonly ref return sealed sizeof stackalloc static struct switch this throw true try typeof unchecked unsafe using virtual volatile while async await var record get set init"),
		Types:              words("bool byte char decimal double float int long object sbyte short string uint ulong ushort void dynamic String List Dictionary Task IEnumerable"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b([A-Za-z_][\w<>\[\]]*)\s+(?!(?:if|while|for|switch|catch|return|new|else)\b)([A-Za-z_]\w*)\s*(?=\()`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("void"),
		VariableKeywords:   words("var const"),
	})
	register(Definition{
		ID:                 Ruby,
		Name:               "ruby",
		Extensions:         []string{".rb", ".rake", ".gemspec"},
		Shebangs:           []string{"#!/usr/bin/env ruby", "#!/usr/bin/ruby"},
		Keywords:           words("BEGIN END alias and begin break case class def do else elsif end ensure false for if in module next nil not or redo rescue retry return self super then true undef unless until when while yield require attr_accessor attr_reader attr_writer"),
		Types:              words("Array Hash String Integer Float Symbol Proc Range Struct Object Module Class NilClass TrueClass FalseClass"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"#", "\n"}, {"=begin", "=end"}},
		FunctionPattern:    `\b(def)\s+(?:self\.)?([A-Za-z_]\w*[?!=]?)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:",
		FunctionKeywords:   words("def"),
	})
	register(Definition{
		ID:                 PHP,
		Name:               "php",
		Extensions:         []string{".php", ".phtml"},
		Shebangs:           []string{"#!/usr/bin/env php"},
		Keywords:           words("abstract and array as break callable case catch class clone const continue declare default do echo else elseif empty enddeclare endfor endforeach endif endswitch endwhile extends final finally fn for foreach function global goto if implements include instanceof insteadof interface isset list match namespace new or print private protected public readonly require return static switch throw trait try unset use var while yield true false null"),
		Types:              words("int float bool string array object mixed void iterable never self parent"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"//", "\n"}, {"#", "\n"}, {"/*", "*/"}},
		FunctionPattern:    `\b(function)\s+&?\s*([A-Za-z_]\w*)`,
		OperatorCharacters: "+-*/%=<>!&|^~?:.",
		FunctionKeywords:   words("function fn"),
		VariableKeywords:   words("var const"),
	})
	register(Definition{
		ID:                 HTML,
		Name:               "html",
		Extensions:         []string{".html", ".htm", ".xhtml"},
		Keywords:           words("html head body title meta link script style div span p a img ul ol li table tr td th form input button select option textarea label section article header footer nav main"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"<!--", "-->"}},
		OperatorCharacters: "<>/=",
	})
	register(Definition{
		ID:                 CSS,
		Name:               "css",
		Extensions:         []string{".css", ".scss", ".less"},
		Keywords:           words("important media import keyframes font-face supports charset namespace"),
		Types:              words("px em rem vh vw deg auto none inherit initial"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"/*", "*/"}},
		FunctionPattern:    `(^|[^\w-])([A-Za-z-]+)(?=\()`,
		OperatorCharacters: ":;{}>+~,",
	})
	register(Definition{
		ID:                 JSON,
		Name:               "json",
		Extensions:         []string{".json", ".jsonc"},
		Keywords:           words("true false null"),
		StringDelimiters:   []Delimiter{{`"`, `"`}},
		OperatorCharacters: ":,",
	})
	register(Definition{
		ID:                 YAML,
		Name:               "yaml",
		Extensions:         []string{".yaml", ".yml"},
		Keywords:           words("true false null yes no on off"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"#", "\n"}},
		OperatorCharacters: ":-|>&*!",
	})
	register(Definition{
		ID:                 Markdown,
		Name:               "markdown",
		Extensions:         []string{".md", ".markdown"},
		StringDelimiters:   []Delimiter{{"```", "```"}, {"`", "`"}},
		CommentDelimiters:  []Delimiter{{"<!--", "-->"}},
		OperatorCharacters: "#*_>-+[]()!",
	})
	register(Definition{
		ID:                 Shell,
		Name:               "shell",
		Extensions:         []string{".sh", ".bash", ".zsh"},
		Shebangs:           []string{"#!/bin/sh", "#!/bin/bash", "#!/usr/bin/env bash", "#!/usr/bin/env sh", "#!/bin/zsh"},
		Keywords:           words("if then else elif fi case esac for while until do done in function select time return exit break continue local export readonly declare unset source alias echo"),
		StringDelimiters:   []Delimiter{{`"`, `"`}, {"'", "'"}},
		CommentDelimiters:  []Delimiter{{"#", "\n"}},
		FunctionPattern:    `(?m)^\s*(function\s+)?([A-Za-z_][\w-]*)\s*\(\s*\)`,
		OperatorCharacters: "|&;<>=!$",
		FunctionKeywords:   words("function"),
		VariableKeywords:   words("local export declare readonly"),
	})
}
