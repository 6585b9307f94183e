package theme

import (
	"github.com/goliatone/go-formkit/pkg/classes"
	"github.com/goliatone/go-formkit/pkg/model"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all " +
	"disabled:pointer-events-none disabled:opacity-50 [&_svg]:pointer-events-none [&_svg:not([class*='size-'])]:size-4 shrink-0 [&_svg]:shrink-0 " +
	"outline-none focus-visible:border-ring focus-visible:ring-ring/50 focus-visible:ring-[3px] " +
	"aria-invalid:ring-destructive/20 dark:aria-invalid:ring-destructive/40 aria-invalid:border-destructive active:opacity-80 relative"

var buttonVariants = map[model.ButtonVariant]string{
	model.ButtonDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	model.ButtonDestructive: "bg-destructive text-white hover:bg-destructive/90 focus-visible:ring-destructive/20 dark:focus-visible:ring-destructive/40 dark:bg-destructive/60",
	model.ButtonOutline:     "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground dark:bg-input/30 dark:border-input dark:hover:bg-input/50",
	model.ButtonSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	model.ButtonGhost:       "hover:bg-accent hover:text-accent-foreground dark:hover:bg-accent/50 data-[selected=true]:bg-accent dark:data-[selected=true]:bg-accent/50",
	model.ButtonLink:        "text-primary underline-offset-4 hover:underline p-0",
}

var buttonSizes = map[model.ButtonSize]string{
	model.SizeDefault: "h-9 px-4 py-2 has-[>svg]:px-3",
	model.SizeSmall:   "h-8 rounded-md gap-1.5 px-3 has-[>svg]:px-2.5",
	model.SizeLarge:   "h-10 rounded-md px-6 has-[>svg]:px-4",
	model.SizeIcon:    "size-9",
	model.SizeIconSm:  "size-8",
	model.SizeIconLg:  "size-10",
}

// ButtonVariant normalises a variant tag; unknown tags become the default.
func ButtonVariant(v model.ButtonVariant) model.ButtonVariant {
	if _, ok := buttonVariants[v]; ok {
		return v
	}
	return model.ButtonDefault
}

// ButtonSize normalises a size tag; unknown tags become the default.
func ButtonSize(s model.ButtonSize) model.ButtonSize {
	if _, ok := buttonSizes[s]; ok {
		return s
	}
	return model.SizeDefault
}

// ButtonClasses composes the class list for a variant/size pair plus any
// caller classes, which win on conflicts.
func ButtonClasses(variant model.ButtonVariant, size model.ButtonSize, extra string) string {
	return classes.Merge(
		buttonBase,
		buttonVariants[ButtonVariant(variant)],
		buttonSizes[ButtonSize(size)],
		extra,
	)
}

// Input chrome classes.
const (
	InputWrapperClass    = "gap-1 grid"
	InputLabelRowClass   = "flex flex-row items-center gap-1"
	InputLabelClass      = "text-sm font-medium text-foreground"
	InputRequiredClass   = "text-destructive"
	InputSearchIconClass = "text-muted-foreground ml-3 flex-shrink-0"
	InputToggleClass     = "mr-3 flex-shrink-0 cursor-pointer text-muted-foreground hover:text-foreground disabled:cursor-not-allowed disabled:opacity-50"
	InputTipClass        = "text-xs text-muted-foreground tip-message"
	InputErrorClass      = "text-xs text-destructive error-message"
)

const inputContainerBase = "flex w-full min-w-0 rounded-md border bg-transparent shadow-xs transition-[color,box-shadow,border-color] " +
	"border-input file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground " +
	"placeholder:text-muted-foreground selection:bg-primary selection:text-primary-foreground " +
	"focus-within:border-ring focus-within:ring-ring/50 focus-within:ring-[3px] " +
	"data-[focus=true]:border-ring data-[focus=true]:ring-ring/50 data-[focus=true]:ring-[3px]"

const inputContainerError = "border-destructive ring-destructive/20 dark:ring-destructive/40"

const inputContainerTail = "aria-invalid:border-destructive aria-invalid:ring-destructive/20 dark:aria-invalid:ring-destructive/40 " +
	"disabled:cursor-not-allowed disabled:opacity-50 dark:bg-input/30 flex-row items-center"

const inputElementBase = "h-9 w-full flex-1 bg-transparent px-3 py-1 text-base outline-none file:inline-flex file:h-7 " +
	"disabled:cursor-not-allowed disabled:bg-transparent md:text-sm"

// InputContainerClasses composes the bordered container around the input.
func InputContainerClasses(hasError bool, extra string) string {
	return classes.Merge(inputContainerBase, classes.When(hasError, inputContainerError), inputContainerTail, extra)
}

// InputElementClasses composes the classes of the input element itself.
func InputElementClasses(extra string) string {
	return classes.Merge(inputElementBase, extra)
}
