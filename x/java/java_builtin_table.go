package java

// --- Java 内置符号表 ---

// BuiltinTable JDK 常用类型的签名描述，格式见 descriptorParser。
// 只收录分析源码时最常触达的成员。
var BuiltinTable = map[string]string{
	// === java.lang 核心类 (默认隐式导入) ===
	"java.lang.Object": `
		class java.lang.Object
		<init>()
		boolean equals(java.lang.Object)
		int hashCode()
		java.lang.String toString()
		final java.lang.Class<?> getClass()
		final void notify()
		final void notifyAll()
		final void wait()
		final void wait(long)`,
	"java.lang.String": `
		final class java.lang.String implements java.lang.CharSequence, java.lang.Comparable<java.lang.String>
		field static java.util.Comparator<java.lang.String> CASE_INSENSITIVE_ORDER
		<init>()
		<init>(java.lang.String)
		<init>(char[])
		<init>(byte[])
		int length()
		boolean isEmpty()
		boolean isBlank()
		char charAt(int)
		int compareTo(java.lang.String)
		int compareToIgnoreCase(java.lang.String)
		boolean equalsIgnoreCase(java.lang.String)
		boolean contains(java.lang.CharSequence)
		boolean startsWith(java.lang.String)
		boolean endsWith(java.lang.String)
		int indexOf(java.lang.String)
		int indexOf(int)
		int lastIndexOf(java.lang.String)
		java.lang.String substring(int)
		java.lang.String substring(int, int)
		java.lang.String concat(java.lang.String)
		java.lang.String replace(java.lang.CharSequence, java.lang.CharSequence)
		java.lang.String replaceAll(java.lang.String, java.lang.String)
		java.lang.String[] split(java.lang.String)
		java.lang.String trim()
		java.lang.String strip()
		java.lang.String toLowerCase()
		java.lang.String toUpperCase()
		java.lang.String repeat(int)
		char[] toCharArray()
		byte[] getBytes()
		java.lang.String intern()
		java.lang.String formatted(java.lang.Object...)
		java.util.stream.IntStream chars()
		java.util.stream.Stream<java.lang.String> lines()
		static java.lang.String valueOf(java.lang.Object)
		static java.lang.String valueOf(int)
		static java.lang.String valueOf(long)
		static java.lang.String valueOf(double)
		static java.lang.String valueOf(char)
		static java.lang.String valueOf(boolean)
		static java.lang.String valueOf(char[])
		static java.lang.String format(java.lang.String, java.lang.Object...)
		static java.lang.String join(java.lang.CharSequence, java.lang.CharSequence...)
		static java.lang.String join(java.lang.CharSequence, java.lang.Iterable<? extends java.lang.CharSequence>)`,
	"java.lang.CharSequence": `
		interface java.lang.CharSequence
		int length()
		char charAt(int)
		java.lang.CharSequence subSequence(int, int)
		default boolean isEmpty()`,
	"java.lang.Comparable": `
		interface java.lang.Comparable<T>
		int compareTo(T)`,
	"java.lang.Iterable": `
		interface java.lang.Iterable<T>
		java.util.Iterator<T> iterator()
		default void forEach(java.util.function.Consumer<? super T>)`,
	"java.lang.Runnable": `
		interface java.lang.Runnable
		void run()`,
	"java.lang.AutoCloseable": `
		interface java.lang.AutoCloseable
		void close()`,
	"java.lang.Cloneable": `
		interface java.lang.Cloneable`,
	"java.lang.Appendable": `
		interface java.lang.Appendable
		java.lang.Appendable append(java.lang.CharSequence)
		java.lang.Appendable append(char)`,
	"java.lang.Class": `
		final class java.lang.Class<T>
		java.lang.String getName()
		java.lang.String getSimpleName()
		boolean isInstance(java.lang.Object)
		T cast(java.lang.Object)
		boolean isAssignableFrom(java.lang.Class<?>)
		T[] getEnumConstants()
		static java.lang.Class<?> forName(java.lang.String)`,
	"java.lang.Enum": `
		abstract class java.lang.Enum<E extends java.lang.Enum<E>> implements java.lang.Comparable<E>
		final java.lang.String name()
		final int ordinal()
		final int compareTo(E)
		final java.lang.Class<E> getDeclaringClass()
		static <T extends java.lang.Enum<T>> T valueOf(java.lang.Class<T>, java.lang.String)`,
	"java.lang.Record": `
		abstract class java.lang.Record
		<init>()`,
	"java.lang.Number": `
		abstract class java.lang.Number
		abstract int intValue()
		abstract long longValue()
		abstract float floatValue()
		abstract double doubleValue()
		byte byteValue()
		short shortValue()`,
	"java.lang.Boolean": `
		final class java.lang.Boolean implements java.lang.Comparable<java.lang.Boolean>
		field static java.lang.Boolean TRUE
		field static java.lang.Boolean FALSE
		boolean booleanValue()
		static java.lang.Boolean valueOf(boolean)
		static boolean parseBoolean(java.lang.String)
		static java.lang.String toString(boolean)`,
	"java.lang.Byte": `
		final class java.lang.Byte extends java.lang.Number implements java.lang.Comparable<java.lang.Byte>
		static java.lang.Byte valueOf(byte)`,
	"java.lang.Short": `
		final class java.lang.Short extends java.lang.Number implements java.lang.Comparable<java.lang.Short>
		static java.lang.Short valueOf(short)`,
	"java.lang.Character": `
		final class java.lang.Character implements java.lang.Comparable<java.lang.Character>
		char charValue()
		static java.lang.Character valueOf(char)
		static boolean isDigit(char)
		static boolean isLetter(char)
		static boolean isLetterOrDigit(char)
		static boolean isWhitespace(char)
		static boolean isUpperCase(char)
		static char toUpperCase(char)
		static char toLowerCase(char)`,
	"java.lang.Integer": `
		final class java.lang.Integer extends java.lang.Number implements java.lang.Comparable<java.lang.Integer>
		field static int MAX_VALUE
		field static int MIN_VALUE
		<init>(int)
		int intValue()
		static java.lang.Integer valueOf(int)
		static java.lang.Integer valueOf(java.lang.String)
		static int parseInt(java.lang.String)
		static int parseInt(java.lang.String, int)
		static java.lang.String toString(int)
		static java.lang.String toHexString(int)
		static int compare(int, int)
		static int max(int, int)
		static int min(int, int)
		static int sum(int, int)`,
	"java.lang.Long": `
		final class java.lang.Long extends java.lang.Number implements java.lang.Comparable<java.lang.Long>
		field static long MAX_VALUE
		field static long MIN_VALUE
		long longValue()
		static java.lang.Long valueOf(long)
		static long parseLong(java.lang.String)
		static java.lang.String toString(long)
		static int compare(long, long)`,
	"java.lang.Float": `
		final class java.lang.Float extends java.lang.Number implements java.lang.Comparable<java.lang.Float>
		static java.lang.Float valueOf(float)
		static float parseFloat(java.lang.String)`,
	"java.lang.Double": `
		final class java.lang.Double extends java.lang.Number implements java.lang.Comparable<java.lang.Double>
		field static double MAX_VALUE
		field static double NaN
		double doubleValue()
		static java.lang.Double valueOf(double)
		static double parseDouble(java.lang.String)
		static int compare(double, double)
		static boolean isNaN(double)`,
	"java.lang.Void": `
		final class java.lang.Void`,
	"java.lang.Math": `
		final class java.lang.Math
		field static double PI
		field static double E
		static int abs(int)
		static long abs(long)
		static double abs(double)
		static int max(int, int)
		static long max(long, long)
		static double max(double, double)
		static int min(int, int)
		static long min(long, long)
		static double min(double, double)
		static double sqrt(double)
		static double pow(double, double)
		static double floor(double)
		static double ceil(double)
		static long round(double)
		static double random()
		static int floorMod(int, int)`,
	"java.lang.System": `
		final class java.lang.System
		field static java.io.PrintStream out
		field static java.io.PrintStream err
		field static java.io.InputStream in
		static long currentTimeMillis()
		static long nanoTime()
		static void arraycopy(java.lang.Object, int, java.lang.Object, int, int)
		static java.lang.String getProperty(java.lang.String)
		static java.lang.String getenv(java.lang.String)
		static void exit(int)
		static int identityHashCode(java.lang.Object)
		static java.lang.String lineSeparator()`,
	"java.lang.StringBuilder": `
		final class java.lang.StringBuilder implements java.lang.CharSequence, java.lang.Appendable
		<init>()
		<init>(int)
		<init>(java.lang.String)
		java.lang.StringBuilder append(java.lang.Object)
		java.lang.StringBuilder append(java.lang.String)
		java.lang.StringBuilder append(char)
		java.lang.StringBuilder append(int)
		java.lang.StringBuilder append(long)
		java.lang.StringBuilder append(double)
		java.lang.StringBuilder append(boolean)
		java.lang.StringBuilder insert(int, java.lang.String)
		java.lang.StringBuilder reverse()
		java.lang.StringBuilder deleteCharAt(int)
		void setLength(int)
		int length()
		char charAt(int)
		java.lang.CharSequence subSequence(int, int)
		java.lang.String toString()`,
	"java.lang.Thread": `
		class java.lang.Thread implements java.lang.Runnable
		<init>()
		<init>(java.lang.Runnable)
		<init>(java.lang.Runnable, java.lang.String)
		void run()
		void start()
		void join()
		void interrupt()
		boolean isInterrupted()
		java.lang.String getName()
		void setDaemon(boolean)
		static java.lang.Thread currentThread()
		static void sleep(long)`,
	"java.lang.ThreadLocal": `
		class java.lang.ThreadLocal<T>
		<init>()
		T get()
		void set(T)
		void remove()
		static <S> java.lang.ThreadLocal<S> withInitial(java.util.function.Supplier<? extends S>)`,
	"java.lang.Throwable": `
		class java.lang.Throwable
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)
		<init>(java.lang.Throwable)
		java.lang.String getMessage()
		java.lang.Throwable getCause()
		void printStackTrace()
		void addSuppressed(java.lang.Throwable)
		java.lang.StackTraceElement[] getStackTrace()`,
	"java.lang.StackTraceElement": `
		final class java.lang.StackTraceElement
		java.lang.String getMethodName()
		int getLineNumber()`,
	"java.lang.Exception": `
		class java.lang.Exception extends java.lang.Throwable
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)
		<init>(java.lang.Throwable)`,
	"java.lang.Error": `
		class java.lang.Error extends java.lang.Throwable
		<init>()
		<init>(java.lang.String)`,
	"java.lang.RuntimeException": `
		class java.lang.RuntimeException extends java.lang.Exception
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)
		<init>(java.lang.Throwable)`,
	"java.lang.IllegalArgumentException": `
		class java.lang.IllegalArgumentException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)`,
	"java.lang.IllegalStateException": `
		class java.lang.IllegalStateException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)`,
	"java.lang.NullPointerException": `
		class java.lang.NullPointerException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)`,
	"java.lang.UnsupportedOperationException": `
		class java.lang.UnsupportedOperationException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)`,
	"java.lang.IndexOutOfBoundsException": `
		class java.lang.IndexOutOfBoundsException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)
		<init>(int)`,
	"java.lang.ArithmeticException": `
		class java.lang.ArithmeticException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)`,
	"java.lang.ClassCastException": `
		class java.lang.ClassCastException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)`,
	"java.lang.NumberFormatException": `
		class java.lang.NumberFormatException extends java.lang.IllegalArgumentException
		<init>()
		<init>(java.lang.String)`,
	"java.lang.InterruptedException": `
		class java.lang.InterruptedException extends java.lang.Exception
		<init>()
		<init>(java.lang.String)`,
	"java.lang.CloneNotSupportedException": `
		class java.lang.CloneNotSupportedException extends java.lang.Exception
		<init>()`,

	// === java.lang 注解 ===
	"java.lang.Override":            `annotation java.lang.Override`,
	"java.lang.Deprecated":          `annotation java.lang.Deprecated`,
	"java.lang.FunctionalInterface": `annotation java.lang.FunctionalInterface`,
	"java.lang.SafeVarargs":         `annotation java.lang.SafeVarargs`,
	"java.lang.SuppressWarnings": `
		annotation java.lang.SuppressWarnings
		java.lang.String[] value()`,
	"java.lang.annotation.Annotation": `
		interface java.lang.annotation.Annotation
		java.lang.Class<? extends java.lang.annotation.Annotation> annotationType()`,
	"java.lang.annotation.Retention": `
		annotation java.lang.annotation.Retention
		java.lang.annotation.RetentionPolicy value()`,
	"java.lang.annotation.Target": `
		annotation java.lang.annotation.Target
		java.lang.annotation.ElementType[] value()`,
	"java.lang.annotation.RetentionPolicy": `
		enum java.lang.annotation.RetentionPolicy
		field static java.lang.annotation.RetentionPolicy SOURCE
		field static java.lang.annotation.RetentionPolicy CLASS
		field static java.lang.annotation.RetentionPolicy RUNTIME`,
	"java.lang.annotation.ElementType": `
		enum java.lang.annotation.ElementType
		field static java.lang.annotation.ElementType TYPE
		field static java.lang.annotation.ElementType FIELD
		field static java.lang.annotation.ElementType METHOD
		field static java.lang.annotation.ElementType PARAMETER
		field static java.lang.annotation.ElementType CONSTRUCTOR`,

	// === java.io ===
	"java.io.Serializable": `interface java.io.Serializable`,
	"java.io.Closeable": `
		interface java.io.Closeable extends java.lang.AutoCloseable
		void close()`,
	"java.io.PrintStream": `
		class java.io.PrintStream
		void println()
		void println(java.lang.Object)
		void println(java.lang.String)
		void println(char)
		void println(int)
		void println(long)
		void println(double)
		void println(boolean)
		void print(java.lang.Object)
		void print(java.lang.String)
		void print(char)
		void print(int)
		void print(long)
		void print(double)
		void print(boolean)
		java.io.PrintStream printf(java.lang.String, java.lang.Object...)
		void flush()`,
	"java.io.InputStream": `
		abstract class java.io.InputStream implements java.io.Closeable
		abstract int read()
		int read(byte[])
		void close()`,
	"java.io.OutputStream": `
		abstract class java.io.OutputStream implements java.io.Closeable
		abstract void write(int)
		void write(byte[])
		void flush()
		void close()`,
	"java.io.IOException": `
		class java.io.IOException extends java.lang.Exception
		<init>()
		<init>(java.lang.String)
		<init>(java.lang.String, java.lang.Throwable)
		<init>(java.lang.Throwable)`,
	"java.io.UncheckedIOException": `
		class java.io.UncheckedIOException extends java.lang.RuntimeException
		<init>(java.io.IOException)
		<init>(java.lang.String, java.io.IOException)`,

	// === java.util 集合 ===
	"java.util.Iterator": `
		interface java.util.Iterator<E>
		boolean hasNext()
		E next()
		default void remove()`,
	"java.util.Collection": `
		interface java.util.Collection<E> extends java.lang.Iterable<E>
		int size()
		boolean isEmpty()
		boolean contains(java.lang.Object)
		boolean add(E)
		boolean remove(java.lang.Object)
		boolean addAll(java.util.Collection<? extends E>)
		boolean removeAll(java.util.Collection<?>)
		boolean containsAll(java.util.Collection<?>)
		void clear()
		java.lang.Object[] toArray()
		<T> T[] toArray(T[])
		default boolean removeIf(java.util.function.Predicate<? super E>)
		default java.util.stream.Stream<E> stream()`,
	"java.util.List": `
		interface java.util.List<E> extends java.util.Collection<E>
		E get(int)
		E set(int, E)
		void add(int, E)
		E remove(int)
		int indexOf(java.lang.Object)
		java.util.List<E> subList(int, int)
		default void sort(java.util.Comparator<? super E>)
		default void replaceAll(java.util.function.UnaryOperator<E>)
		static <T> java.util.List<T> of()
		static <T> java.util.List<T> of(T...)
		static <T> java.util.List<T> copyOf(java.util.Collection<? extends T>)`,
	"java.util.Set": `
		interface java.util.Set<E> extends java.util.Collection<E>
		static <T> java.util.Set<T> of()
		static <T> java.util.Set<T> of(T...)
		static <T> java.util.Set<T> copyOf(java.util.Collection<? extends T>)`,
	"java.util.Queue": `
		interface java.util.Queue<E> extends java.util.Collection<E>
		boolean offer(E)
		E poll()
		E peek()`,
	"java.util.Deque": `
		interface java.util.Deque<E> extends java.util.Queue<E>
		void push(E)
		E pop()
		void addFirst(E)
		void addLast(E)
		E pollFirst()
		E pollLast()
		E peekFirst()
		E peekLast()`,
	"java.util.Map": `
		interface java.util.Map<K, V>
		int size()
		boolean isEmpty()
		V get(java.lang.Object)
		V put(K, V)
		V remove(java.lang.Object)
		boolean containsKey(java.lang.Object)
		boolean containsValue(java.lang.Object)
		void putAll(java.util.Map<? extends K, ? extends V>)
		void clear()
		java.util.Set<K> keySet()
		java.util.Collection<V> values()
		java.util.Set<java.util.Map.Entry<K, V>> entrySet()
		default V getOrDefault(java.lang.Object, V)
		default V putIfAbsent(K, V)
		default V computeIfAbsent(K, java.util.function.Function<? super K, ? extends V>)
		default V merge(K, V, java.util.function.BiFunction<? super V, ? super V, ? extends V>)
		default void forEach(java.util.function.BiConsumer<? super K, ? super V>)
		static <A, B> java.util.Map<A, B> of()
		static <A, B> java.util.Map<A, B> of(A, B)
		static <A, B> java.util.Map<A, B> of(A, B, A, B)
		static <A, B> java.util.Map.Entry<A, B> entry(A, B)`,
	"java.util.Map.Entry": `
		interface java.util.Map.Entry<K, V>
		K getKey()
		V getValue()
		V setValue(V)`,
	"java.util.AbstractCollection": `
		abstract class java.util.AbstractCollection<E> implements java.util.Collection<E>
		abstract java.util.Iterator<E> iterator()
		abstract int size()`,
	"java.util.AbstractList": `
		abstract class java.util.AbstractList<E> extends java.util.AbstractCollection<E> implements java.util.List<E>
		abstract E get(int)`,
	"java.util.ArrayList": `
		class java.util.ArrayList<E> extends java.util.AbstractList<E> implements java.util.List<E>, java.io.Serializable
		<init>()
		<init>(int)
		<init>(java.util.Collection<? extends E>)
		E get(int)
		int size()
		void ensureCapacity(int)
		void trimToSize()`,
	"java.util.LinkedList": `
		class java.util.LinkedList<E> extends java.util.AbstractList<E> implements java.util.List<E>, java.util.Deque<E>
		<init>()
		<init>(java.util.Collection<? extends E>)
		E get(int)
		int size()`,
	"java.util.ArrayDeque": `
		class java.util.ArrayDeque<E> extends java.util.AbstractCollection<E> implements java.util.Deque<E>
		<init>()
		<init>(int)`,
	"java.util.HashSet": `
		class java.util.HashSet<E> extends java.util.AbstractCollection<E> implements java.util.Set<E>
		<init>()
		<init>(int)
		<init>(java.util.Collection<? extends E>)`,
	"java.util.LinkedHashSet": `
		class java.util.LinkedHashSet<E> extends java.util.HashSet<E> implements java.util.Set<E>
		<init>()
		<init>(java.util.Collection<? extends E>)`,
	"java.util.TreeSet": `
		class java.util.TreeSet<E> extends java.util.AbstractCollection<E> implements java.util.Set<E>
		<init>()
		<init>(java.util.Comparator<? super E>)
		E first()
		E last()`,
	"java.util.AbstractMap": `
		abstract class java.util.AbstractMap<K, V> implements java.util.Map<K, V>`,
	"java.util.HashMap": `
		class java.util.HashMap<K, V> extends java.util.AbstractMap<K, V> implements java.util.Map<K, V>
		<init>()
		<init>(int)
		<init>(java.util.Map<? extends K, ? extends V>)`,
	"java.util.LinkedHashMap": `
		class java.util.LinkedHashMap<K, V> extends java.util.HashMap<K, V> implements java.util.Map<K, V>
		<init>()
		<init>(int)`,
	"java.util.TreeMap": `
		class java.util.TreeMap<K, V> extends java.util.AbstractMap<K, V> implements java.util.Map<K, V>
		<init>()
		<init>(java.util.Comparator<? super K>)
		K firstKey()
		K lastKey()`,
	"java.util.Optional": `
		final class java.util.Optional<T>
		static <U> java.util.Optional<U> empty()
		static <U> java.util.Optional<U> of(U)
		static <U> java.util.Optional<U> ofNullable(U)
		T get()
		boolean isPresent()
		boolean isEmpty()
		void ifPresent(java.util.function.Consumer<? super T>)
		T orElse(T)
		T orElseGet(java.util.function.Supplier<? extends T>)
		T orElseThrow()
		<U> java.util.Optional<U> map(java.util.function.Function<? super T, ? extends U>)
		<U> java.util.Optional<U> flatMap(java.util.function.Function<? super T, java.util.Optional<U>>)
		java.util.Optional<T> filter(java.util.function.Predicate<? super T>)`,
	"java.util.Objects": `
		final class java.util.Objects
		static boolean equals(java.lang.Object, java.lang.Object)
		static int hash(java.lang.Object...)
		static int hashCode(java.lang.Object)
		static java.lang.String toString(java.lang.Object)
		static boolean isNull(java.lang.Object)
		static boolean nonNull(java.lang.Object)
		static <T> T requireNonNull(T)
		static <T> T requireNonNull(T, java.lang.String)
		static <T> T requireNonNullElse(T, T)`,
	"java.util.Arrays": `
		class java.util.Arrays
		static <T> java.util.List<T> asList(T...)
		static void sort(int[])
		static void sort(java.lang.Object[])
		static <T> void sort(T[], java.util.Comparator<? super T>)
		static java.lang.String toString(java.lang.Object[])
		static java.lang.String toString(int[])
		static <T> java.util.stream.Stream<T> stream(T[])
		static void fill(int[], int)
		static <T> T[] copyOf(T[], int)
		static boolean equals(java.lang.Object[], java.lang.Object[])`,
	"java.util.Collections": `
		class java.util.Collections
		static <T> java.util.List<T> emptyList()
		static <T> java.util.Set<T> emptySet()
		static <K, V> java.util.Map<K, V> emptyMap()
		static <T> java.util.List<T> singletonList(T)
		static <T> java.util.List<T> unmodifiableList(java.util.List<? extends T>)
		static <T> java.util.Set<T> unmodifiableSet(java.util.Set<? extends T>)
		static <K, V> java.util.Map<K, V> unmodifiableMap(java.util.Map<? extends K, ? extends V>)
		static <T extends java.lang.Comparable<? super T>> void sort(java.util.List<T>)
		static <T> void sort(java.util.List<T>, java.util.Comparator<? super T>)
		static void reverse(java.util.List<?>)`,
	"java.util.Comparator": `
		interface java.util.Comparator<T>
		int compare(T, T)
		boolean equals(java.lang.Object)
		default java.util.Comparator<T> reversed()
		default java.util.Comparator<T> thenComparing(java.util.Comparator<? super T>)
		static <U, K extends java.lang.Comparable<? super K>> java.util.Comparator<U> comparing(java.util.function.Function<? super U, ? extends K>)
		static <U> java.util.Comparator<U> comparingInt(java.util.function.ToIntFunction<? super U>)
		static <U extends java.lang.Comparable<? super U>> java.util.Comparator<U> naturalOrder()
		static <U extends java.lang.Comparable<? super U>> java.util.Comparator<U> reverseOrder()`,
	"java.util.Random": `
		class java.util.Random
		<init>()
		<init>(long)
		int nextInt()
		int nextInt(int)
		double nextDouble()
		boolean nextBoolean()`,
	"java.util.Scanner": `
		final class java.util.Scanner implements java.io.Closeable
		<init>(java.io.InputStream)
		<init>(java.lang.String)
		boolean hasNext()
		boolean hasNextLine()
		java.lang.String next()
		java.lang.String nextLine()
		int nextInt()
		void close()`,
	"java.util.NoSuchElementException": `
		class java.util.NoSuchElementException extends java.lang.RuntimeException
		<init>()
		<init>(java.lang.String)`,

	// === java.util.function ===
	"java.util.function.Function": `
		interface java.util.function.Function<T, R>
		R apply(T)
		default <V> java.util.function.Function<T, V> andThen(java.util.function.Function<? super R, ? extends V>)
		default <V> java.util.function.Function<V, R> compose(java.util.function.Function<? super V, ? extends T>)
		static <U> java.util.function.Function<U, U> identity()`,
	"java.util.function.BiFunction": `
		interface java.util.function.BiFunction<T, U, R>
		R apply(T, U)`,
	"java.util.function.UnaryOperator": `
		interface java.util.function.UnaryOperator<T> extends java.util.function.Function<T, T>
		static <U> java.util.function.UnaryOperator<U> identity()`,
	"java.util.function.BinaryOperator": `
		interface java.util.function.BinaryOperator<T> extends java.util.function.BiFunction<T, T, T>`,
	"java.util.function.Supplier": `
		interface java.util.function.Supplier<T>
		T get()`,
	"java.util.function.Consumer": `
		interface java.util.function.Consumer<T>
		void accept(T)
		default java.util.function.Consumer<T> andThen(java.util.function.Consumer<? super T>)`,
	"java.util.function.BiConsumer": `
		interface java.util.function.BiConsumer<T, U>
		void accept(T, U)`,
	"java.util.function.Predicate": `
		interface java.util.function.Predicate<T>
		boolean test(T)
		default java.util.function.Predicate<T> negate()
		default java.util.function.Predicate<T> and(java.util.function.Predicate<? super T>)
		default java.util.function.Predicate<T> or(java.util.function.Predicate<? super T>)
		static <U> java.util.function.Predicate<U> not(java.util.function.Predicate<? super U>)`,
	"java.util.function.BiPredicate": `
		interface java.util.function.BiPredicate<T, U>
		boolean test(T, U)`,
	"java.util.function.ToIntFunction": `
		interface java.util.function.ToIntFunction<T>
		int applyAsInt(T)`,
	"java.util.function.ToLongFunction": `
		interface java.util.function.ToLongFunction<T>
		long applyAsLong(T)`,
	"java.util.function.ToDoubleFunction": `
		interface java.util.function.ToDoubleFunction<T>
		double applyAsDouble(T)`,
	"java.util.function.IntFunction": `
		interface java.util.function.IntFunction<R>
		R apply(int)`,
	"java.util.function.IntPredicate": `
		interface java.util.function.IntPredicate
		boolean test(int)`,
	"java.util.function.IntUnaryOperator": `
		interface java.util.function.IntUnaryOperator
		int applyAsInt(int)`,
	"java.util.function.IntBinaryOperator": `
		interface java.util.function.IntBinaryOperator
		int applyAsInt(int, int)`,
	"java.util.function.IntConsumer": `
		interface java.util.function.IntConsumer
		void accept(int)`,
	"java.util.function.BooleanSupplier": `
		interface java.util.function.BooleanSupplier
		boolean getAsBoolean()`,

	// === java.util.stream ===
	"java.util.stream.BaseStream": `
		interface java.util.stream.BaseStream<T, S extends java.util.stream.BaseStream<T, S>> extends java.lang.AutoCloseable
		java.util.Iterator<T> iterator()
		void close()`,
	"java.util.stream.Stream": `
		interface java.util.stream.Stream<T> extends java.util.stream.BaseStream<T, java.util.stream.Stream<T>>
		java.util.stream.Stream<T> filter(java.util.function.Predicate<? super T>)
		<R> java.util.stream.Stream<R> map(java.util.function.Function<? super T, ? extends R>)
		<R> java.util.stream.Stream<R> flatMap(java.util.function.Function<? super T, ? extends java.util.stream.Stream<? extends R>>)
		java.util.stream.IntStream mapToInt(java.util.function.ToIntFunction<? super T>)
		java.util.stream.Stream<T> distinct()
		java.util.stream.Stream<T> sorted()
		java.util.stream.Stream<T> sorted(java.util.Comparator<? super T>)
		java.util.stream.Stream<T> limit(long)
		java.util.stream.Stream<T> skip(long)
		java.util.stream.Stream<T> peek(java.util.function.Consumer<? super T>)
		void forEach(java.util.function.Consumer<? super T>)
		<R, A> R collect(java.util.stream.Collector<? super T, A, R>)
		T reduce(T, java.util.function.BinaryOperator<T>)
		java.util.Optional<T> findFirst()
		java.util.Optional<T> findAny()
		java.util.Optional<T> min(java.util.Comparator<? super T>)
		java.util.Optional<T> max(java.util.Comparator<? super T>)
		boolean anyMatch(java.util.function.Predicate<? super T>)
		boolean allMatch(java.util.function.Predicate<? super T>)
		boolean noneMatch(java.util.function.Predicate<? super T>)
		long count()
		java.lang.Object[] toArray()
		java.util.List<T> toList()
		static <U> java.util.stream.Stream<U> of(U...)
		static <U> java.util.stream.Stream<U> empty()`,
	"java.util.stream.IntStream": `
		interface java.util.stream.IntStream extends java.util.stream.BaseStream<java.lang.Integer, java.util.stream.IntStream>
		java.util.stream.IntStream filter(java.util.function.IntPredicate)
		java.util.stream.IntStream map(java.util.function.IntUnaryOperator)
		<U> java.util.stream.Stream<U> mapToObj(java.util.function.IntFunction<? extends U>)
		java.util.stream.Stream<java.lang.Integer> boxed()
		void forEach(java.util.function.IntConsumer)
		int sum()
		long count()
		int[] toArray()
		static java.util.stream.IntStream range(int, int)
		static java.util.stream.IntStream rangeClosed(int, int)
		static java.util.stream.IntStream of(int...)`,
	"java.util.stream.Collector": `
		interface java.util.stream.Collector<T, A, R>`,
	"java.util.stream.Collectors": `
		final class java.util.stream.Collectors
		static <T> java.util.stream.Collector<T, ?, java.util.List<T>> toList()
		static <T> java.util.stream.Collector<T, ?, java.util.Set<T>> toSet()
		static java.util.stream.Collector<java.lang.CharSequence, ?, java.lang.String> joining()
		static java.util.stream.Collector<java.lang.CharSequence, ?, java.lang.String> joining(java.lang.CharSequence)
		static <T, K, U> java.util.stream.Collector<T, ?, java.util.Map<K, U>> toMap(java.util.function.Function<? super T, ? extends K>, java.util.function.Function<? super T, ? extends U>)
		static <T, K> java.util.stream.Collector<T, ?, java.util.Map<K, java.util.List<T>>> groupingBy(java.util.function.Function<? super T, ? extends K>)
		static <T> java.util.stream.Collector<T, ?, java.lang.Long> counting()`,
}
